// suggest.go implements the "snapname suggest" command: derive the
// closest valid snap name from arbitrary input and show what changed.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/log"
	"github.com/dadap/snapd/internal/sanitize"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <input>",
	Short: "Derive a valid snap name from arbitrary input",
	Long: `Derives the closest valid snap name from the input (lower-cased,
disallowed characters collapsed to dashes, trimmed and capped) and
prints it together with a character diff of the changes. Exits 1 when
no valid name can be derived.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		input := args[0]
		suggested, err := sanitize.Name(input)
		log.Event("cli:suggest", "suggest").Subject(input).Write(err)

		if err != nil {
			if JSON() {
				_ = PrintJSONError(err)
			} else {
				fmt.Fprintf(Out(), "no valid snap name can be derived from %q\n", input)
			}
			return errRejected
		}

		r := sanitize.Explain(input, suggested)
		if JSON() {
			return PrintJSON(map[string]any{
				"input":     input,
				"suggested": suggested,
				"diff":      r.Diff,
				"unchanged": input == suggested,
			})
		}
		fmt.Fprint(Out(), r.Format(Colour()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
