// instance.go implements the "snapname instance" command: split an
// instance name into its snap name and instance key.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/log"
	"github.com/dadap/snapd/internal/naming"
)

var instanceValidate bool

var instanceCmd = &cobra.Command{
	Use:   "instance <instance-name>",
	Short: "Split a snap instance name",
	Long: `Splits <name>_<key> into the snap name and the instance key.
Splitting alone is mechanical and always succeeds; with --validate the
name and key are also checked against the grammar and rejection exits 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		instanceName := args[0]
		snap, key := naming.SplitInstanceName(instanceName)

		var verr error
		if instanceValidate {
			verr = naming.ValidateInstanceName(instanceName)
		}
		log.Event("cli:instance", "split-instance").Subject(instanceName).Write(verr)

		if JSON() {
			res := map[string]any{"name": snap, "instance_key": key}
			if instanceValidate {
				res["valid"] = verr == nil
				if verr != nil {
					res["reason"] = verr.Error()
				}
			}
			if err := PrintJSON(res); err != nil {
				return err
			}
			return verr
		}

		fmt.Fprintf(Out(), "name: %s\n", snap)
		if key != "" {
			fmt.Fprintf(Out(), "key:  %s\n", key)
		}
		if verr != nil {
			fmt.Fprintf(Out(), "invalid: %v\n", verr)
		}
		return verr
	},
}

func init() {
	instanceCmd.Flags().BoolVar(&instanceValidate, "validate", false, "Also validate the name and key")
	rootCmd.AddCommand(instanceCmd)
}
