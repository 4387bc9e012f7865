// name.go implements the snap name grammar check.
//
// The grammar is deliberately hand-coded as a single byte-wise pass
// rather than a regular expression: this code runs on untrusted input
// inside a privileged launcher, and a character loop keeps the worst
// case linear with no regexp engine in the trust boundary. The
// equivalent pattern is:
//
//	^([a-z0-9]+-?)*[a-z](-?[a-z0-9])*$
//
// capped at 40 characters.

package naming

import (
	"fmt"
	"io"
	"os"
)

// maxNameLen is the longest allowed snap name.
const maxNameLen = 40

// ValidateSnapName checks that name is a well-formed snap name.
//
// Validation rules, in the order they are reported:
//   - only lower case ASCII letters, digits and dashes are allowed
//   - must not start with a dash
//   - must not contain two consecutive dashes
//   - must not end with a dash
//   - must contain at least one letter (digits and dashes alone are
//     not a name; this also covers the empty string)
//   - must be at most 40 characters
//
// The first violated rule determines the message; callers can rely on
// the exact strings staying stable. Returns nil for a valid name.
func ValidateSnapName(name string) error {
	gotLetter := false
	var last byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			gotLetter = true
		case c >= '0' && c <= '9':
			// digits may appear anywhere, even leading
		case c == '-':
			if i == 0 {
				return invalidName("snap name cannot start with a dash")
			}
			if last == '-' {
				return invalidName("snap name cannot contain two consecutive dashes")
			}
		default:
			// anything else, including uppercase and non-ASCII bytes
			return invalidName("snap name must use lower case letters, digits or dashes")
		}
		last = c
	}
	if last == '-' {
		return invalidName("snap name cannot end with a dash")
	}
	if !gotLetter {
		return invalidName("snap name must contain at least one letter")
	}
	if len(name) > maxNameLen {
		return invalidName("snap name must be shorter than 41 characters")
	}
	return nil
}

// Overridable for tests: MustValidateSnapName must terminate the
// process on bad input, which a test cannot observe directly.
var (
	stderr io.Writer      = os.Stderr
	exit   func(code int) = os.Exit
)

// MustValidateSnapName validates name and terminates the process with
// the failure message on stderr if it is invalid. This is the abort
// variant for call sites that have no way to recover from a bad name;
// a validation failure must never be silently ignored.
func MustValidateSnapName(name string) {
	if err := ValidateSnapName(name); err != nil {
		fmt.Fprintln(stderr, err.Error())
		exit(1)
	}
}
