// Package kcmdline parses the kernel command line.
//
// The launcher consults boot parameters (snapd_recovery_mode and
// friends) before deciding how to confine anything, so the parse must
// agree byte-for-byte with what the kernel itself does. Parse follows
// the same algorithm as next_arg in the kernel's lib/cmdline.c,
// including its quoting quirks, rather than a simpler split that would
// disagree on corner cases.
package kcmdline

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var procCmdline = "/proc/cmdline"

// MockProcCmdline overrides the path to /proc/cmdline. For use in tests.
func MockProcCmdline(path string) (restore func()) {
	old := procCmdline
	procCmdline = path
	return func() { procCmdline = old }
}

// Argument is a single parsed kernel argument.
type Argument struct {
	Param  string
	Value  string
	Quoted bool
}

// String renders the argument back in command-line form, re-quoting
// values that were quoted or contain spaces.
func (a *Argument) String() string {
	if a.Value == "" {
		return quoteIfNeeded(a.Param, false)
	}
	return fmt.Sprintf("%s=%s", quoteIfNeeded(a.Param, false), quoteIfNeeded(a.Value, a.Quoted))
}

// UnmarshalYAML implements yaml.Unmarshaler for a single argument.
func (a *Argument) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var arg string
	if err := unmarshal(&arg); err != nil {
		return errors.New("cannot unmarshal kernel argument")
	}
	parsed := Parse(arg)
	if len(parsed) != 1 {
		return fmt.Errorf("%q is not a unique kernel argument", arg)
	}
	*a = parsed[0]
	return nil
}

func quoteIfNeeded(s string, force bool) string {
	if force || strings.Contains(s, " ") {
		return `"` + s + `"`
	}
	return s
}

// isSpace matches isspace() from the kernel's nolibc ctype.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpaces returns the index of the first non-space byte, or len(s).
func skipSpaces(s []byte) int {
	for i, b := range s {
		if !isSpace(b) {
			return i
		}
	}
	return len(s)
}

// Parse splits a kernel command line into its arguments, preserving
// order and duplicates.
func Parse(cmdline string) []Argument {
	raw := []byte(cmdline)
	args := []Argument{}
	start := skipSpaces(raw)
	for start < len(raw) {
		arg, end := nextArg(raw[start:])
		args = append(args, arg)
		start += end
		start += skipSpaces(raw[start:])
	}
	return args
}

// nextArg parses one argument known to start at the beginning of raw
// and returns it together with the index just past its end. The logic
// tracks the kernel's next_arg: quotes toggle an in-quote flag, the
// first '=' outside nothing special splits param from value, and a
// closing quote at the very end is stripped from whichever side it
// belongs to.
func nextArg(raw []byte) (arg Argument, end int) {
	var i, equals, start int
	var argQuoted, inQuote, quoted bool

	if raw[0] == '"' {
		start = 1
		argQuoted = true
		inQuote = true
	}

	for i = start; i < len(raw); i++ {
		if isSpace(raw[i]) && !inQuote {
			break
		}
		if raw[i] == '=' && equals == 0 {
			equals = i
		}
		if raw[i] == '"' {
			inQuote = !inQuote
		}
	}

	end = i
	endParam := i
	// trimVal/trimParam record whether a trailing '"' needs stripping
	// from the value or, when the whole argument was quoted and has no
	// value, from the parameter.
	var trimVal, trimParam int
	if argQuoted && end > start && raw[end-1] == '"' {
		quoted = true
		if equals != 0 {
			trimVal = 1
		} else {
			trimParam = 1
		}
	}

	var value string
	if equals != 0 {
		endParam = equals
		startVal := equals + 1
		endVal := end
		if startVal < end && raw[startVal] == '"' {
			quoted = true
			startVal++
			if raw[end-1] == '"' {
				trimVal = 1
			}
		}
		value = string(raw[startVal : endVal-trimVal])
	}

	return Argument{
		Param:  string(raw[start : endParam-trimParam]),
		Value:  value,
		Quoted: quoted,
	}, end
}

// CommandLine returns the command line reported by the running kernel.
func CommandLine() (string, error) {
	buf, err := os.ReadFile(procCmdline)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(buf)), nil
}

// KeyValues returns a map of the requested keys to the values set for
// them on the kernel command line. Missing keys are omitted; keys
// present without a value map to the empty string. When a key is
// repeated the last occurrence wins.
func KeyValues(keys ...string) (map[string]string, error) {
	cmdline, err := CommandLine()
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(keys))
	for _, arg := range Parse(cmdline) {
		for _, key := range keys {
			if arg.Param == key {
				m[key] = arg.Value
				break
			}
		}
	}
	return m, nil
}
