// kcmdline.go implements the "snapname kcmdline" command: report
// snapd-relevant boot parameters from the kernel command line.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/kcmdline"
)

// defaultKcmdlineKeys are the boot parameters snapd reacts to.
var defaultKcmdlineKeys = []string{
	"snapd_recovery_mode",
	"snapd_recovery_system",
	"snapd.debug",
}

var kcmdlineCmd = &cobra.Command{
	Use:   "kcmdline [key...]",
	Short: "Show snapd boot parameters from the kernel command line",
	Long: `Reads /proc/cmdline with the kernel's own argument parsing rules and
prints the requested keys and their values. Without arguments the
snapd_* keys are shown. Keys absent from the command line are omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		keys := args
		if len(keys) == 0 {
			keys = defaultKcmdlineKeys
		}

		values, err := kcmdline.KeyValues(keys...)
		if err != nil {
			return PrintJSONError(fmt.Errorf("cannot read kernel command line: %w", err))
		}

		if JSON() {
			return PrintJSON(values)
		}

		present := make([]string, 0, len(values))
		for k := range values {
			present = append(present, k)
		}
		sort.Strings(present)
		for _, k := range present {
			if values[k] == "" {
				fmt.Fprintln(Out(), k)
				continue
			}
			fmt.Fprintf(Out(), "%s=%s\n", k, values[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kcmdlineCmd)
}
