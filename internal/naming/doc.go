// Package naming validates snap identifiers before they are used in
// security-sensitive contexts.
//
// This package enforces the syntactic rules for snap names, security
// tags and instance names at the boundary between untrusted input
// (package metadata, command-line arguments) and anything that builds
// filesystem paths, security-profile lookups or process labels from
// them. A name that passes validation is safe to embed in a path or
// profile name; nothing here interprets what the name means.
//
// # Validators
//
// ValidateSnapName checks a package name against the snap name grammar
// and reports exactly which rule failed.
// VerifySecurityTag checks that a security tag is well formed and names
// the expected snap.
// SplitInstanceName and DropInstanceKey separate a snap instance name
// into its name and instance-key parts.
// ValidateInstanceName checks a full instance name including the key.
//
// # Error Handling
//
// Validation failures are reported as *Error values carrying the
// domain, a failure code and a stable human-readable message. Use
// errors.Is with the exported sentinels (ErrInvalidName,
// ErrInvalidInstanceName, ErrInvalidInstanceKey) for programmatic
// checks:
//
//	if errors.Is(err, naming.ErrInvalidName) {
//	    // reject the name
//	}
//
// All validators are pure functions: no I/O, no shared state, safe for
// concurrent use.
package naming
