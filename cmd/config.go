// config.go implements the "snapname config" command for reading and
// writing configuration keys.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/config"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key [value]]",
	Short: "Get or set configuration",
	Long: `Without arguments lists all keys. With a key prints its value. With a
key and a value sets it; writes go to the global config unless --local
is given.

Keys: ` + strings.Join(config.ValidKeys(), ", "),
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		switch len(args) {
		case 0:
			all := Config().All()
			if JSON() {
				return PrintJSON(all)
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(Out(), "%s=%s\n", k, all[k])
			}
			return nil

		case 1:
			v, err := Config().Get(args[0])
			if err != nil {
				return PrintJSONError(err)
			}
			if JSON() {
				return PrintJSON(map[string]string{args[0]: v})
			}
			fmt.Fprintln(Out(), v)
			return nil

		default:
			scope := config.ScopeGlobal
			if configLocal {
				scope = config.ScopeLocal
			}
			cfg, err := config.LoadScope(scope)
			if err != nil {
				return PrintJSONError(err)
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return PrintJSONError(err)
			}
			if err := cfg.SaveScope(scope); err != nil {
				return PrintJSONError(err)
			}
			return PrintJSON(map[string]string{args[0]: args[1]})
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Write to .snapname/config.yaml in the current directory")
	rootCmd.AddCommand(configCmd)
}
