package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootWithoutCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	defer rootCmd.SetOut(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(out.String(), "no command supplied") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://from-env.db")
	t.Setenv("FLEETSIM_POLICY", "self")

	db := "sqlite://" + filepath.Join(t.TempDir(), "flag.db")
	if err := runCmd.Flags().Parse([]string{"--db", db, "--policy", "enemy", "--reset"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	t.Cleanup(func() {
		for _, name := range []string{"db", "policy", "reset"} {
			runCmd.Flags().Lookup(name).Changed = false
		}
		flagDB, flagPolicy, flagReset = "", "", false
	})

	cfg, err := loadConfig(runCmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.DatabaseURL != db || cfg.Policy != "enemy" || !cfg.Reset {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestPolicyNamesIncludesBuiltins(t *testing.T) {
	names := policyNames()
	if !strings.Contains(names, "self") || !strings.Contains(names, "enemy") {
		t.Errorf("policyNames() = %q", names)
	}
}
