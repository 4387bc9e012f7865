// version.go implements the version command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, git commit, Go version, and platform.`,
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		if JSON() {
			_ = PrintJSON(info)
			return
		}
		fmt.Fprint(Out(), info.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
