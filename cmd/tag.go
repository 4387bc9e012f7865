// tag.go implements the "snapname tag" command: verify a security tag
// against the snap name it is supposed to belong to.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dadap/snapd/internal/log"
	"github.com/dadap/snapd/internal/naming"
)

var tagCmd = &cobra.Command{
	Use:   "tag <tag> <snap-name>",
	Short: "Verify a security tag",
	Long: `Verifies that a security tag (snap.<name>.<app> or
snap.<name>.hook.<hook>) is well formed and that its name component is
exactly <snap-name>. The check is comparative on purpose: a profile
belonging to one snap must never pass a check made on behalf of
another. Exits 1 when the tag is rejected.

The tag verifier reports only accept/reject; run "snapname check" on
the name to get a reason for a malformed name component.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		tag, snapName := args[0], args[1]
		ok := naming.VerifySecurityTag(tag, snapName)

		var verr error
		if !ok {
			verr = errRejected
		}
		log.Event("cli:tag", "verify-tag").Subject(tag).Expected(snapName).Write(verr)

		if JSON() {
			if err := PrintJSON(map[string]any{"tag": tag, "snap_name": snapName, "valid": ok}); err != nil {
				return err
			}
		} else if ok {
			fmt.Fprintf(Out(), "%s: ok\n", tag)
		} else {
			fmt.Fprintf(Out(), "%s: not a valid security tag for snap %q\n", tag, snapName)
		}

		return verr
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
