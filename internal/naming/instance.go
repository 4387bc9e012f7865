// instance.go deals with snap instance names (<name>_<instance-key>).
//
// The instance key distinguishes parallel installs of the same snap.
// Splitting is purely mechanical: by the time these functions run the
// input is a trusted or already-validated store identifier, so a
// malformed destination or source is a bug in the caller, not bad user
// input, and is treated as such (panic rather than error).

package naming

import (
	"fmt"
	"strings"
)

// maxInstanceKeyLen is the longest allowed instance key.
const maxInstanceKeyLen = 10

// SplitInstanceName splits an instance name into its snap name and
// instance key. A name without an underscore has an empty key.
func SplitInstanceName(instanceName string) (snap, instanceKey string) {
	snap, instanceKey, _ = strings.Cut(instanceName, "_")
	return snap, instanceKey
}

// DropInstanceKey copies just the snap name portion of instanceName
// into dest followed by a NUL byte, and returns the name length. The
// terminator is kept so the result can be handed to kernel interfaces
// that expect C strings; dest must therefore have room for the name
// plus one byte.
//
// A nil or empty dest, or a dest too small for the name and its
// terminator, is a contract violation and panics. After a panic the
// contents of dest are undefined. Bytes beyond the returned length
// (past the terminator) are left untouched.
func DropInstanceKey(instanceName string, dest []byte) int {
	if len(dest) == 0 {
		panic("DropInstanceKey: destination buffer is empty")
	}
	name, _, _ := strings.Cut(instanceName, "_")
	if len(name)+1 > len(dest) {
		panic(fmt.Sprintf("DropInstanceKey: destination too small for %q (%d > %d)",
			name, len(name)+1, len(dest)))
	}
	n := copy(dest, name)
	dest[n] = 0
	return n
}

// ValidateInstanceName checks that instanceName is a well-formed snap
// instance name: a valid snap name, optionally followed by a single
// underscore and an instance key of 1-10 lower case letters or digits.
func ValidateInstanceName(instanceName string) error {
	parts := strings.SplitN(instanceName, "_", 3)
	if len(parts) > 2 {
		return invalidInstanceName("snap instance name can contain only one underscore")
	}
	if err := ValidateSnapName(parts[0]); err != nil {
		return err
	}
	if len(parts) == 2 {
		return validateInstanceKey(parts[1])
	}
	return nil
}

// validateInstanceKey checks an instance key against ^[a-z0-9]{1,10}$.
func validateInstanceKey(key string) error {
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			continue
		}
		return invalidInstanceKey("instance key must use lower case letters or digits")
	}
	if len(key) == 0 {
		return invalidInstanceKey("instance key must contain at least one letter or digit")
	}
	if len(key) > maxInstanceKeyLen {
		return invalidInstanceKey("instance key must be shorter than 11 characters")
	}
	return nil
}
