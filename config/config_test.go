// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/trash/config"
	"github.com/mdhender/trash/renderer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name    string
		content string
	}{
		{".trash.toml", "timeout = 30\nverbose = true\nindent-style = true\n"},
		{".trash.yaml", "timeout: 30\nverbose: true\nindent-style: true\n"},
		{".trash.json", `{"Timeout": 30, "Verbose": true, "IndentStyle": true}`},
		{".trwdog.rc", `{"Timeout": 30, "Verbose": true, "IndentStyle": true}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, dir, tc.name, tc.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Timeout != 30 || !cfg.Verbose || !cfg.IndentStyle {
				t.Errorf("Load = %+v", cfg)
			}
			if cfg.Style() != renderer.Indent {
				t.Errorf("Style = %v, want %v", cfg.Style(), renderer.Indent)
			}
		})
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, t.TempDir(), "rc.toml", "display-name = true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout = %d, want %d", cfg.Timeout, config.DefaultTimeout)
	}
	if !cfg.DisplayName {
		t.Error("DisplayName = false, want true")
	}
	if cfg.Style() != renderer.DefaultStyle {
		t.Errorf("Style = %v, want %v", cfg.Style(), renderer.DefaultStyle)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{
		filepath.Join(dir, "missing.toml"),
		writeFile(t, dir, "bad.toml", "timeout = \n"),
		writeFile(t, dir, "bad.yaml", "timeout: [\n"),
		writeFile(t, dir, "bad.json", "{"),
		writeFile(t, dir, "negative.toml", "timeout = -1\n"),
		writeFile(t, dir, "rules.toml", "[grammars.P]\nrules = [\"a\", \"\"]\n"),
	} {
		if _, err := config.Load(path); err == nil {
			t.Errorf("Load(%s): want error", filepath.Base(path))
		}
	}
}

func TestLoad_WrapsCause(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load err = %v, want fs.ErrNotExist", err)
	}
	path := writeFile(t, t.TempDir(), "rc.toml", `[grammars.ExprLexer]
tokens = "ExprLexer.tokens"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Registry(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Registry err = %v, want fs.ErrNotExist", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := config.Discover(dir); got != "" {
		t.Fatalf("Discover(empty dir) = %q", got)
	}
	rc := writeFile(t, dir, ".trwdog.rc", "{}")
	if got := config.Discover(dir); got != rc {
		t.Errorf("Discover = %q, want %q", got, rc)
	}
	writeFile(t, dir, ".trash.json", "{}")
	yaml := writeFile(t, dir, ".trash.yaml", "")
	if got := config.Discover(dir); got != yaml {
		t.Errorf("Discover = %q, want %q", got, yaml)
	}
}

func TestRegistry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ExprLexer.tokens", "ID=1\nINT=2\n")
	path := writeFile(t, dir, "rc.toml", `
[grammars.ExprLexer]
tokens = "ExprLexer.tokens"

[grammars.ExprParser]
rules = ["start", "expr"]
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	v := reg.Lookup("ExprLexer", "ExprParser")
	if name, _ := v.TokenName(2); name != "INT" {
		t.Errorf("TokenName(2) = %q, want INT", name)
	}
	if name, _ := v.RuleName(1); name != "expr" {
		t.Errorf("RuleName(1) = %q, want expr", name)
	}
}

func TestRegistry_MissingTokensFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rc.yaml", "grammars:\n  L:\n    tokens: nope.tokens\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Registry(); err == nil {
		t.Fatal("Registry: want error for missing tokens file")
	}
}
