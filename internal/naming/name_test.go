package naming

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateSnapName(t *testing.T) {
	valid := []string{
		"a", "aa", "aaa", "aaaa",
		"a-a", "aa-a", "a-aa", "a-b-c",
		"a0", "a-0", "a-0a",
		"01game", "1-or-2",
		"hello-world",
		"12to8", "123test",
		// exactly 40 characters
		strings.Repeat("x", 40),
		strings.Repeat("x", 39) + "0",
	}
	for _, name := range valid {
		if err := ValidateSnapName(name); err != nil {
			t.Errorf("ValidateSnapName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []struct {
		name string
		msg  string
	}{
		// empty input folds into the no-letter rule
		{"", "snap name must contain at least one letter"},
		// character set violations
		{"hello world", "snap name must use lower case letters, digits or dashes"},
		{"hello_world", "snap name must use lower case letters, digits or dashes"},
		{"Hello", "snap name must use lower case letters, digits or dashes"},
		{"hello!", "snap name must use lower case letters, digits or dashes"},
		{"a ", "snap name must use lower case letters, digits or dashes"},
		{" a", "snap name must use lower case letters, digits or dashes"},
		{"日本語", "snap name must use lower case letters, digits or dashes"},
		{"한글", "snap name must use lower case letters, digits or dashes"},
		{"ру́сский язы́к", "snap name must use lower case letters, digits or dashes"},
		// dash placement
		{"-foo", "snap name cannot start with a dash"},
		{"foo-", "snap name cannot end with a dash"},
		{"a-", "snap name cannot end with a dash"},
		{"f--oo", "snap name cannot contain two consecutive dashes"},
		{"a--a", "snap name cannot contain two consecutive dashes"},
		// dashes and digits alone are not a name
		{"-", "snap name cannot start with a dash"},
		{"--", "snap name cannot start with a dash"},
		{"0", "snap name must contain at least one letter"},
		{"123", "snap name must contain at least one letter"},
		{"1-2-3", "snap name must contain at least one letter"},
		// length limit
		{strings.Repeat("x", 41), "snap name must be shorter than 41 characters"},
		{strings.Repeat("x", 20) + "-" + strings.Repeat("x", 20), "snap name must be shorter than 41 characters"},
		{strings.Repeat("1", 40) + "x", "snap name must be shorter than 41 characters"},
		{"x" + strings.Repeat("1", 40), "snap name must be shorter than 41 characters"},
		{"x" + strings.Repeat("-x", 20), "snap name must be shorter than 41 characters"},
		// overlong and letter-less: the letter rule wins
		{strings.Repeat("1", 41), "snap name must contain at least one letter"},
	}
	for _, tt := range invalid {
		err := ValidateSnapName(tt.name)
		if err == nil {
			t.Errorf("ValidateSnapName(%q) = nil, want error", tt.name)
			continue
		}
		if err.Error() != tt.msg {
			t.Errorf("ValidateSnapName(%q) = %q, want %q", tt.name, err.Error(), tt.msg)
		}
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateSnapName(%q): errors.Is(err, ErrInvalidName) = false", tt.name)
		}
	}
}

// Incrementally longer prefixes of a name mixing letters and digits
// must all validate; this guards against a future regexp rewrite
// getting greedy matching wrong.
func TestValidateSnapName_Prefixes(t *testing.T) {
	const name = "u-94903713687486543234157734673284536758"
	for i := 3; i <= len(name); i++ {
		if err := ValidateSnapName(name[:i]); err != nil {
			t.Errorf("ValidateSnapName(%q) = %v, want nil", name[:i], err)
		}
	}
}

func TestValidateSnapName_ErrorFields(t *testing.T) {
	err := ValidateSnapName("hello world")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("ValidateSnapName error is %T, want *Error", err)
	}
	if e.Domain != Domain {
		t.Errorf("Domain = %q, want %q", e.Domain, Domain)
	}
	if e.Code != InvalidName {
		t.Errorf("Code = %v, want InvalidName", e.Code)
	}
	if e.Message != "snap name must use lower case letters, digits or dashes" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestMustValidateSnapName(t *testing.T) {
	// Valid names pass through without touching the exit hook.
	restore := mockExit(t)
	defer restore()
	MustValidateSnapName("hello-world")

	var buf bytes.Buffer
	oldStderr := stderr
	stderr = &buf
	defer func() { stderr = oldStderr }()

	code := -1
	exit = func(c int) { code = c }
	MustValidateSnapName("hello world")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "snap name must use lower case letters, digits or dashes\n" {
		t.Errorf("stderr = %q", got)
	}
}

// mockExit replaces the exit hook with one that fails the test, for
// paths that must not abort.
func mockExit(t *testing.T) (restore func()) {
	t.Helper()
	old := exit
	exit = func(code int) {
		t.Fatalf("unexpected process exit with code %d", code)
	}
	return func() { exit = old }
}
