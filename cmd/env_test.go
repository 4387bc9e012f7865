// env_test.go provides the in-process test harness for CLI commands.
// Commands are executed against the real cobra tree with the output
// writer swapped for a buffer and HOME pointed at a scratch directory
// so config and audit state never leak between tests.

package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

type testEnv struct {
	t   *testing.T
	buf bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	env := &testEnv{t: t}
	SetOut(&env.buf)
	t.Cleanup(func() { SetOut(os.Stdout) })
	return env
}

// resetFlags restores flag-backed package state between runs; cobra
// re-parses arguments but does not re-apply defaults.
func resetFlags() {
	output = ""
	color = ""
	instanceValidate = false
	configLocal = false
}

func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("run %v: %v\noutput: %s", args, err, out)
	}
	return out
}

func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	resetFlags()
	e.buf.Reset()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return e.buf.String(), err
}

func (e *testEnv) contains(out, want string) {
	e.t.Helper()
	if !strings.Contains(out, want) {
		e.t.Errorf("output missing %q:\n%s", want, out)
	}
}
