// guide.go implements the "snapname guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package, ensuring
// documentation is always available without external files. Terminal output
// gets glamour rendering for readability; pipe/redirect gets raw markdown
// for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dadap/snapd/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the snapname usage guide",
	Long: `Outputs the snapname guide for LLMs and humans.

  snapname guide            # main guide
  snapname guide names      # snap name grammar
  snapname guide tags       # security tag structure
  snapname guide instances  # instance names and keys`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		content, err := guide.Get(name)
		if err != nil {
			available, listErr := guide.List()
			if listErr != nil {
				return listErr
			}
			return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			rendered, err := glamour.Render(content, "dark")
			if err == nil {
				fmt.Fprint(Out(), rendered)
				return nil
			}
		}

		fmt.Fprint(Out(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
