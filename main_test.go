package main

import (
	"testing"
	"time"
)

func TestRootCmdFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	if got, _ := cmd.Flags().GetString("src_lang"); got != "en" {
		t.Errorf("src_lang default = %q, want en", got)
	}
	if got, _ := cmd.Flags().GetString("dest_lang"); got != "es" {
		t.Errorf("dest_lang default = %q, want es", got)
	}
	if got, _ := cmd.Flags().GetDuration("delay"); got != time.Second {
		t.Errorf("delay default = %v, want 1s", got)
	}
}

func TestRootCmdRequiresTwoArgs(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"in.po"},
		{"in.po", "out.po", "extra"},
	} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("Execute(%v) succeeded, want argument error", args)
		}
	}
}

func TestVersionCmdRegistered(t *testing.T) {
	cmd := newRootCmd()
	sub, _, err := cmd.Find([]string{"version"})
	if err != nil || sub == nil || sub.Use != "version" {
		t.Fatalf("version subcommand not found: %v", err)
	}
}
