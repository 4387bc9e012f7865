// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command
// logic. Commands read flag values through accessors rather than the
// variables so tests can swap the output writer without touching cobra
// internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dadap/snapd/internal/config"
)

var validOutputFormats = []string{"json"}

var (
	output string
	color  string
)

// currentConfig is loaded by the root PersistentPreRunE.
var currentConfig *config.Config

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour reports whether output should be colourised, combining the
// --color flag, the output.color config key and terminal detection.
func Colour() bool {
	mode := color
	if mode == "" && currentConfig != nil {
		mode = currentConfig.Color()
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// Config returns the loaded configuration; never nil after the root
// command has run its PersistentPreRunE.
func Config() *config.Config {
	if currentConfig == nil {
		return &config.Config{}
	}
	return currentConfig
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing cobra's duplicate
// report), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&color, "color", "", "Colour mode: auto, always, never")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
