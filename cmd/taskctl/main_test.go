package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_RequiresProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	root := newRootCmd()
	root.SetArgs([]string{"config"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "no profile") {
		t.Fatalf("Execute() error = %v, want missing profile error", err)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	want := map[string]bool{"migrate": false, "create-admin": false, "config": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	admin, _, err := root.Find([]string{"create-admin"})
	if err != nil {
		t.Fatalf("Find(create-admin) error = %v", err)
	}
	for _, flag := range []string{"username", "email", "password"} {
		if admin.Flags().Lookup(flag) == nil {
			t.Errorf("create-admin missing --%s", flag)
		}
	}
}
