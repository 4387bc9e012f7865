// explain.go renders the difference between a rejected identifier and
// its sanitised suggestion.
//
// Names are single short strings, so the diff is rendered inline with
// [-removed-] and {+added+} markers rather than as unified hunks.

package sanitize

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds an inline diff between the raw input and a suggestion.
type Result struct {
	Raw       string // the rejected input
	Suggested string // the derived valid name
	Diff      string // inline diff with [-..-] / {+..+} markers
}

// Explain computes the character-level changes Name made to raw.
func Explain(raw, suggested string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(raw, suggested, false)
	d = dmp.DiffCleanupSemantic(d)

	var b strings.Builder
	for _, seg := range d {
		switch seg.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + seg.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + seg.Text + "+}")
		case diffmatchpatch.DiffEqual:
			b.WriteString(seg.Text)
		}
	}

	return Result{Raw: raw, Suggested: suggested, Diff: b.String()}
}

// Colourise replaces the diff markers with ANSI colours.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)
	r := strings.NewReplacer(
		"[-", red, "-]", reset,
		"{+", green, "+}", reset,
	)
	return r.Replace(d)
}

// Format returns the suggestion and its inline diff, optionally with
// ANSI colours.
func (r Result) Format(colour bool) string {
	d := r.Diff
	if colour {
		d = Colourise(d)
	}
	return r.Suggested + "\t" + d + "\n"
}
