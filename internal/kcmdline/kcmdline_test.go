package kcmdline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		cmdline string
		want    []Argument
	}{
		{"", []Argument{}},
		{"   ", []Argument{}},
		{"foo", []Argument{{Param: "foo"}}},
		{"foo bar", []Argument{{Param: "foo"}, {Param: "bar"}}},
		{"foo=1 bar=2", []Argument{
			{Param: "foo", Value: "1"},
			{Param: "bar", Value: "2"},
		}},
		// empty value
		{"foo=", []Argument{{Param: "foo"}}},
		// quoted values keep their spaces
		{`foo="a b"`, []Argument{{Param: "foo", Value: "a b", Quoted: true}}},
		{`foo="a b" bar`, []Argument{
			{Param: "foo", Value: "a b", Quoted: true},
			{Param: "bar"},
		}},
		// quoted argument without value
		{`"foo bar"`, []Argument{{Param: "foo bar", Quoted: true}}},
		// repeated arguments are preserved in order
		{"panic=-1 panic=5", []Argument{
			{Param: "panic", Value: "-1"},
			{Param: "panic", Value: "5"},
		}},
		// extra whitespace flavours
		{"\tfoo\n bar=baz\r", []Argument{
			{Param: "foo"},
			{Param: "bar", Value: "baz"},
		}},
		// only the first = splits
		{"foo=a=b", []Argument{{Param: "foo", Value: "a=b"}}},
		// unterminated quote runs to end of line, like the kernel does
		{`foo="a b`, []Argument{{Param: "foo", Value: "a b", Quoted: true}}},
	}
	for _, tt := range tests {
		got := Parse(tt.cmdline)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.cmdline, got, tt.want)
		}
	}
}

func TestArgumentString(t *testing.T) {
	tests := []struct {
		arg  Argument
		want string
	}{
		{Argument{Param: "foo"}, "foo"},
		{Argument{Param: "foo", Value: "bar"}, "foo=bar"},
		{Argument{Param: "foo", Value: "a b"}, `foo="a b"`},
		{Argument{Param: "foo", Value: "bar", Quoted: true}, `foo="bar"`},
	}
	for _, tt := range tests {
		if got := tt.arg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmdline")
	content := "BOOT_IMAGE=/vmlinuz root=/dev/sda1 snapd_recovery_mode=run panic=-1 quiet snapd.debug=1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	restore := MockProcCmdline(path)
	defer restore()

	m, err := KeyValues("snapd_recovery_mode", "snapd.debug", "quiet", "missing")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"snapd_recovery_mode": "run",
		"snapd.debug":         "1",
		"quiet":               "",
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("KeyValues = %#v, want %#v", m, want)
	}
}

func TestKeyValues_MissingFile(t *testing.T) {
	restore := MockProcCmdline(filepath.Join(t.TempDir(), "does-not-exist"))
	defer restore()

	if _, err := KeyValues("foo"); err == nil {
		t.Error("KeyValues with unreadable cmdline = nil error, want error")
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher([]Pattern{
		ConstantPattern("panic", "-1"),
		AnyPattern("snapd.debug"),
	})

	tests := []struct {
		arg  Argument
		want bool
	}{
		{Argument{Param: "panic", Value: "-1"}, true},
		{Argument{Param: "panic", Value: "5"}, false},
		{Argument{Param: "snapd.debug", Value: "1"}, true},
		{Argument{Param: "snapd.debug", Value: "anything"}, true},
		{Argument{Param: "quiet"}, false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.arg); got != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestPatternUnmarshalYAML(t *testing.T) {
	var patterns []Pattern
	doc := "- panic=-1\n- snapd.debug=*\n- quiet\n"
	if err := yaml.Unmarshal([]byte(doc), &patterns); err != nil {
		t.Fatal(err)
	}
	m := NewMatcher(patterns)

	if !m.Match(Argument{Param: "panic", Value: "-1"}) {
		t.Error("exact pattern did not match")
	}
	if m.Match(Argument{Param: "panic", Value: "0"}) {
		t.Error("exact pattern matched wrong value")
	}
	if !m.Match(Argument{Param: "snapd.debug", Value: "whatever"}) {
		t.Error("wildcard pattern did not match")
	}
	if !m.Match(Argument{Param: "quiet"}) {
		t.Error("bare parameter did not match")
	}

	// A quoted * is a literal value, not a wildcard.
	var quoted Pattern
	if err := yaml.Unmarshal([]byte(`"star=\"*\""`), &quoted); err != nil {
		t.Fatal(err)
	}
	mq := NewMatcher([]Pattern{quoted})
	if !mq.Match(Argument{Param: "star", Value: "*"}) {
		t.Error("quoted * did not match literal *")
	}
	if mq.Match(Argument{Param: "star", Value: "x"}) {
		t.Error("quoted * behaved like a wildcard")
	}

	// Unquoted globbing characters other than a bare * are rejected.
	var bad Pattern
	if err := yaml.Unmarshal([]byte("foo=a*b"), &bad); err == nil {
		t.Error("unquoted glob characters accepted")
	}
}

func TestArgumentUnmarshalYAML(t *testing.T) {
	var arg Argument
	if err := yaml.Unmarshal([]byte("panic=-1"), &arg); err != nil {
		t.Fatal(err)
	}
	if arg.Param != "panic" || arg.Value != "-1" {
		t.Errorf("unmarshalled %#v", arg)
	}

	if err := yaml.Unmarshal([]byte(`"foo bar"`), &arg); err == nil {
		t.Error("two arguments accepted as one")
	}
}
