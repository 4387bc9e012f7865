// tag.go implements security tag verification.
//
// A security tag names a confinement profile and has one of the forms
//
//	snap.<name>.<app>
//	snap.<name>.hook.<hook>
//
// where <name> may carry an instance key suffix (<name>_<key>). The
// tag is only accepted when its name component equals the snap name
// the caller expects; grammar alone is not enough, because a profile
// belonging to one snap must never be mistaken for another's.
//
// Like the name check, this is a hand-coded scan of the pattern
//
//	^snap\.([a-z0-9](-?[a-z0-9])*)(_[a-z0-9]{1,10})?\.([a-zA-Z0-9](-?[a-zA-Z0-9])*|hook\.[a-z](-?[a-z0-9])*)$

package naming

import "strings"

const tagPrefix = "snap."

// VerifySecurityTag reports whether tag is a well-formed security tag
// whose name component is exactly snapName. It returns only a boolean;
// callers that need a reason should run ValidateSnapName on the name
// they expected.
func VerifySecurityTag(tag, snapName string) bool {
	rest, ok := strings.CutPrefix(tag, tagPrefix)
	if !ok {
		return false
	}

	// Name component: lower case letters, digits, single interior dashes.
	n, ok := scanName(rest)
	if !ok {
		return false
	}
	// Optional instance key: _[a-z0-9]{1,10}. The key is part of the
	// name component for comparison purposes.
	if n < len(rest) && rest[n] == '_' {
		k, ok := scanInstanceKey(rest[n+1:])
		if !ok {
			return false
		}
		n += 1 + k
	}
	if rest[:n] != snapName {
		return false
	}

	// Mandatory dot before the entry-point component.
	if n >= len(rest) || rest[n] != '.' {
		return false
	}
	rest = rest[n+1:]

	if hook, ok := strings.CutPrefix(rest, "hook."); ok {
		return validHookName(hook)
	}
	return validAppName(rest)
}

// scanName consumes the longest leading run matching
// [a-z0-9](-?[a-z0-9])* and returns its length. ok is false when the
// run is empty or ends on a dash (the grammar never leaves a dash at a
// component boundary).
func scanName(s string) (n int, ok bool) {
	var last byte
	for n = 0; n < len(s); n++ {
		c := s[n]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
		case c == '-':
			if n == 0 || last == '-' {
				return 0, false
			}
		default:
			if last == '-' {
				return 0, false
			}
			return n, n > 0
		}
		last = c
	}
	if last == '-' {
		return 0, false
	}
	return n, n > 0
}

// scanInstanceKey consumes a leading [a-z0-9]{1,10} run.
func scanInstanceKey(s string) (n int, ok bool) {
	for n = 0; n < len(s); n++ {
		c := s[n]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			continue
		}
		break
	}
	return n, n >= 1 && n <= 10
}

// validAppName checks an application component: ASCII letters of either
// case and digits, single interior dashes, nothing else. This is the
// one place uppercase is allowed (application names predate the strict
// snap name rules).
func validAppName(s string) bool {
	var last byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || last == '-' {
				return false
			}
		default:
			return false
		}
		last = c
	}
	return len(s) > 0 && last != '-'
}

// validHookName checks a hook component: must start with a lower case
// letter, then lower case letters, digits and single interior dashes.
func validHookName(s string) bool {
	if len(s) == 0 || !(s[0] >= 'a' && s[0] <= 'z') {
		return false
	}
	var last byte = s[0]
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
		case c == '-':
			if last == '-' {
				return false
			}
		default:
			return false
		}
		last = c
	}
	return last != '-'
}
