// Package sanitize derives valid snap names from arbitrary input.
//
// Used by the "suggest" command to turn a rejected identifier into the
// closest name the grammar accepts: lower-cased, with every run of
// disallowed bytes collapsed to a single dash, edge dashes trimmed and
// the result capped at the maximum name length. The derived name is
// re-checked against the real validator before it is returned, so a
// nil error guarantees a grammatically valid name.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/dadap/snapd/internal/naming"
)

// maxNameLen mirrors the snap name grammar's length cap.
const maxNameLen = 40

// Name returns the closest valid snap name derivable from raw, or an
// error when no valid name can be derived (for example when raw
// contains no letters at all).
func Name(raw string) (string, error) {
	lower := strings.ToLower(raw)

	var b strings.Builder
	lastDash := true // swallows leading dashes and dash runs
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	name := b.String()
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	name = strings.TrimRight(name, "-")

	if err := naming.ValidateSnapName(name); err != nil {
		return "", fmt.Errorf("cannot derive a valid snap name from %q: %w", raw, err)
	}
	return name, nil
}
