// check.go implements the "snapname check" command: validate one or
// more snap names and report the first broken rule for each.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/log"
	"github.com/dadap/snapd/internal/naming"
)

var errRejected = errors.New("identifier rejected")

var checkCmd = &cobra.Command{
	Use:   "check <name>...",
	Short: "Validate snap names",
	Long: `Checks each name against the snap name grammar and prints the first
broken rule for any that fail. Exits 1 if any name is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Rejection is reported below, not by cobra.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		rejected := false
		for _, name := range args {
			err := naming.ValidateSnapName(name)
			log.Event("cli:check", "validate-name").Subject(name).Write(err)

			if JSON() {
				res := map[string]any{"name": name, "valid": err == nil}
				if err != nil {
					res["reason"] = err.Error()
				}
				if perr := PrintJSON(res); perr != nil {
					return perr
				}
			} else if err != nil {
				fmt.Fprintf(Out(), "%s: %v\n", name, err)
			} else {
				fmt.Fprintf(Out(), "%s: ok\n", name)
			}

			if err != nil {
				rejected = true
			}
		}
		if rejected {
			return errRejected
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
