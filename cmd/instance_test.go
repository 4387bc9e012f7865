package cmd

import "testing"

func TestInstance(t *testing.T) {
	t.Run("split with key", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("instance", "pkg_key")
		env.contains(out, "name: pkg")
		env.contains(out, "key:  key")
	})

	t.Run("split without key", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("instance", "pkg")
		env.contains(out, "name: pkg")
	})

	t.Run("split never fails without validate", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("instance", "_key")
		env.contains(out, "name: \n")
		env.contains(out, "key:  key")
	})
}

func TestInstance_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("instance", "pkg_key", "--validate")
		env.contains(out, "name: pkg")
	})

	t.Run("bad key exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("instance", "pkg_KEY", "--validate")
		if err == nil {
			t.Fatal("Instance(--validate bad key) err = nil, want error")
		}
		env.contains(out, "instance key must use lower case letters or digits")
	})

	t.Run("two underscores exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("instance", "a_b_c", "--validate")
		if err == nil {
			t.Fatal("Instance(--validate a_b_c) err = nil, want error")
		}
		env.contains(out, "snap instance name can contain only one underscore")
	})
}

func TestInstance_JSONOutput(t *testing.T) {
	env := newTestEnv(t)
	out := env.run("instance", "pkg_key", "-o", "json")
	env.contains(out, `"instance_key":"key"`)
	env.contains(out, `"name":"pkg"`)

	out, err := env.runErr("instance", "pkg_toolongkey1", "--validate", "-o", "json")
	if err == nil {
		t.Fatal("Instance(JSON invalid) err = nil, want error")
	}
	env.contains(out, `"valid":false`)
	env.contains(out, "instance key must be shorter than 11 characters")
}
