// errors.go defines the structured validation error used across the
// naming package.
//
// Separated to centralise the error definitions. Unlike plain sentinel
// errors, validation failures here carry a domain/code/message triple
// so callers can branch on the failure kind while still getting a
// stable, user-facing message for each broken rule.

package naming

// Domain identifies this package's errors to callers that dispatch on
// error provenance.
const Domain = "snap"

// Code discriminates the kinds of validation failure.
type Code int

const (
	// InvalidName reports a snap name that violates the name grammar.
	InvalidName Code = iota + 1
	// InvalidInstanceName reports a malformed <name>_<key> instance name.
	InvalidInstanceName
	// InvalidInstanceKey reports a malformed instance key.
	InvalidInstanceKey
)

// Error is a validation failure with a stable message describing the
// first rule the input broke.
type Error struct {
	Domain  string
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches any *Error with the same domain and code, so
// errors.Is(err, ErrInvalidName) works regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Domain == t.Domain && e.Code == t.Code
}

// Sentinels for errors.Is matching. The messages on these are
// placeholders; real failures carry the rule-specific message.
var (
	ErrInvalidName         = &Error{Domain: Domain, Code: InvalidName, Message: "invalid snap name"}
	ErrInvalidInstanceName = &Error{Domain: Domain, Code: InvalidInstanceName, Message: "invalid snap instance name"}
	ErrInvalidInstanceKey  = &Error{Domain: Domain, Code: InvalidInstanceKey, Message: "invalid instance key"}
)

func invalidName(msg string) error {
	return &Error{Domain: Domain, Code: InvalidName, Message: msg}
}

func invalidInstanceName(msg string) error {
	return &Error{Domain: Domain, Code: InvalidInstanceName, Message: msg}
}

func invalidInstanceKey(msg string) error {
	return &Error{Domain: Domain, Code: InvalidInstanceKey, Message: msg}
}
