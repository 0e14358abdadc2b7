package cli

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestEnvLoader_LoadsFlagPath(t *testing.T) {
	dir := t.TempDir()
	path := writeEnvFile(t, dir, "custom.env", "TRANSLATION_PROVIDER=baidu\n")
	t.Setenv(EnvFileVar, "")
	t.Setenv("TRANSLATION_PROVIDER", "")

	fs := newFlagSet()
	loader := AddEnvFlag(fs, filepath.Join(dir, "missing.env"), "")
	if err := fs.Parse([]string{"--env", path}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != path {
		t.Fatalf("expected %s, got %s", path, loaded)
	}
	if got := os.Getenv("TRANSLATION_PROVIDER"); got != "baidu" {
		t.Fatalf("expected TRANSLATION_PROVIDER=baidu, got %q", got)
	}
}

func TestEnvLoader_OverrideVariableWins(t *testing.T) {
	dir := t.TempDir()
	override := writeEnvFile(t, dir, "override.env", "LOG_LEVEL=debug\n")
	flagged := writeEnvFile(t, dir, "flagged.env", "LOG_LEVEL=warn\n")
	t.Setenv(EnvFileVar, override)
	t.Setenv("LOG_LEVEL", "")

	fs := newFlagSet()
	loader := AddEnvFlag(fs, ".env", "")
	if err := fs.Parse([]string{"--env", flagged}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if _, err := loader.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Fatalf("expected override file to win, got %q", got)
	}
}

func TestEnvLoader_MissingDefaultIsNotAnError(t *testing.T) {
	t.Setenv(EnvFileVar, "")

	fs := newFlagSet()
	loader := AddEnvFlag(fs, filepath.Join(t.TempDir(), ".env"), "")
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	loaded, err := loader.Load()
	if err != nil || loaded != "" {
		t.Fatalf("expected silent miss, got %q, %v", loaded, err)
	}
}

func TestEnvLoader_MissingExplicitFileFails(t *testing.T) {
	t.Setenv(EnvFileVar, "")

	dir := t.TempDir()
	fs := newFlagSet()
	loader := AddEnvFlag(fs, filepath.Join(dir, ".env"), "")
	if err := fs.Parse([]string{"--env", filepath.Join(dir, "nope", "absent.env")}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := loader.Load(); err == nil {
		t.Fatalf("expected error for missing explicit env file")
	}

	var nilLoader *EnvLoader
	if _, err := nilLoader.Load(); err == nil {
		t.Fatalf("expected error for nil loader")
	}
}
