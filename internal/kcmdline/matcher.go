// matcher.go implements allow-list matching of kernel arguments.
//
// Gadget metadata declares which boot parameters a device may set,
// either as exact param=value pairs or as param=* to allow any value.
// Matcher answers whether a parsed argument is covered by such a list.

package kcmdline

import (
	"errors"
	"fmt"
	"strings"
)

type valuePattern interface {
	match(value string) bool
}

type anyValue struct{}

func (anyValue) match(string) bool { return true }

type constantValue struct {
	value string
}

func (c constantValue) match(value string) bool { return c.value == value }

// Pattern matches a single kernel argument, by exact value or any
// value (param=*).
type Pattern struct {
	param string
	value valuePattern
}

// ConstantPattern matches param with exactly value.
func ConstantPattern(param, value string) Pattern {
	return Pattern{param: param, value: constantValue{value}}
}

// AnyPattern matches param with any value.
func AnyPattern(param string) Pattern {
	return Pattern{param: param, value: anyValue{}}
}

// UnmarshalYAML implements yaml.Unmarshaler: a pattern is written as a
// kernel argument, with an unquoted value of * meaning any value.
func (p *Pattern) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var arg string
	if err := unmarshal(&arg); err != nil {
		return errors.New("cannot unmarshal kernel argument pattern")
	}
	parsed := Parse(arg)
	if len(parsed) != 1 {
		return fmt.Errorf("%q is not a unique kernel argument", arg)
	}
	// Globbing beyond a bare * is not supported; reject unquoted glob
	// characters so future extensions cannot change the meaning of
	// existing metadata.
	if !parsed[0].Quoted && parsed[0].Value != "*" &&
		strings.ContainsAny(parsed[0].Value, `*?[]\{}`) {
		return fmt.Errorf("%q contains globbing characters and is not quoted", parsed[0].Value)
	}
	p.param = parsed[0].Param
	if !parsed[0].Quoted && parsed[0].Value == "*" {
		p.value = anyValue{}
	} else {
		p.value = constantValue{parsed[0].Value}
	}
	return nil
}

// Matcher matches kernel arguments against a set of patterns.
type Matcher struct {
	patterns map[string]valuePattern
}

// NewMatcher builds a matcher from the allowed patterns. Later
// patterns for the same parameter override earlier ones.
func NewMatcher(allowed []Pattern) Matcher {
	patterns := make(map[string]valuePattern, len(allowed))
	for _, p := range allowed {
		patterns[p.param] = p.value
	}
	return Matcher{patterns: patterns}
}

// Match reports whether arg is covered by one of the matcher's
// patterns.
func (m *Matcher) Match(arg Argument) bool {
	pattern, ok := m.patterns[arg.Param]
	if !ok {
		return false
	}
	return pattern.match(arg.Value)
}
