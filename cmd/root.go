// root.go defines the root command and CLI execution entry point.
//
// Validation commands deliberately distinguish "the tool failed" from
// "the identifier was rejected": both exit non-zero, but rejection is
// reported through the normal output channel so scripts can gate on
// the exit code while humans read the reason.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/config"
	"github.com/dadap/snapd/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "snapname",
	Short: "Validate snap names, security tags and instance names",
	Long: `snapname checks snap identifiers against the grammar the confinement
launcher enforces before building filesystem paths, security-profile
lookups or process labels from them.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		currentConfig = cfg
		return nil
	},
}

// Execute runs the root command and handles process lifecycle. Opens
// audit logging, executes the command, and exits 1 on error (including
// rejected identifiers).
func Execute() {
	// The audit log obeys config, which has not been loaded yet at
	// this point; Open is cheap and Log is a no-op once disabled.
	if cfg, err := config.Load(); err == nil && cfg.AuditEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for tests.
func RootCmd() *cobra.Command {
	return rootCmd
}
