package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"horse.fit/fusiontranslate/internal/translation"
)

func TestDefaultCredentialsPathUsesXDGConfigHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	got, err := DefaultCredentialsPath()
	if err != nil {
		t.Fatalf("DefaultCredentialsPath() error: %v", err)
	}
	want := filepath.Join(tmp, "fusiontranslate", "credentials.yaml")
	if got != want {
		t.Fatalf("DefaultCredentialsPath() = %q, want %q", got, want)
	}

	cfg := &Config{CredentialsFile: "/etc/fusion/creds.yaml"}
	if path, _ := cfg.CredentialsPath(); path != "/etc/fusion/creds.yaml" {
		t.Fatalf("expected explicit path to win, got %q", path)
	}
}

func TestSaveLoadRemoveLifecycle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store := CredentialStore{}
	store.Set(translation.KindBaidu, CredentialEntry{ID: "2015063000000001", Secret: "12345678"})
	store.Set(translation.KindCaiyun, CredentialEntry{Secret: "caiyun-token"})

	if err := SaveCredentials(path, store); err != nil {
		t.Fatalf("SaveCredentials() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("credentials mode = %o, want 600", info.Mode().Perm())
	}

	loaded, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials() error: %v", err)
	}
	if got := loaded.Get(translation.KindBaidu); got.ID != "2015063000000001" || got.Secret != "12345678" {
		t.Fatalf("unexpected baidu entry after reload")
	}
	if got := strings.Join(loaded.Providers(), ","); got != "baidu,caiyun" {
		t.Fatalf("unexpected providers %q", got)
	}

	if !loaded.Remove(translation.KindBaidu) {
		t.Fatalf("expected baidu entry to be removed")
	}
	if loaded.Remove(translation.KindBaidu) {
		t.Fatalf("expected second remove to report nothing removed")
	}
}

func TestSaveCredentials_TightensExistingMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := SaveCredentials(path, CredentialStore{}); err != nil {
		t.Fatalf("SaveCredentials() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("credentials mode = %o, want 600", info.Mode().Perm())
	}
}

func TestLoadCredentials_MissingAndInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := LoadCredentials(filepath.Join(dir, "absent.yaml"))
	if err != nil || len(store) != 0 {
		t.Fatalf("expected empty store for missing file, got %v (%v)", store, err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("baidu: [unterminated"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := LoadCredentials(broken); err == nil {
		t.Fatalf("expected parse error")
	}

	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("deepl:\n  secret: x\n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := LoadCredentials(unknown); err == nil {
		t.Fatalf("expected unknown provider error")
	}
}

func TestLoadCredentials_NormalizesAliases(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("彩云:\n  secret: tok\nYoudao:\n  id: key\n  secret: sec\n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials() error: %v", err)
	}
	if store.Get(translation.KindCaiyun).Secret != "tok" {
		t.Fatalf("expected caiyun alias to be normalized")
	}
	if store.Get(translation.KindYoudao).ID != "key" {
		t.Fatalf("expected youdao entry to be normalized")
	}
}

func TestResolveCredentials_LookupOrder(t *testing.T) {
	t.Setenv("BAIDU_APP_ID", "env-app")
	t.Setenv("BAIDU_KEY", "")

	store := CredentialStore{}
	store.Set(translation.KindBaidu, CredentialEntry{ID: "file-app", Secret: "file-key"})

	got, err := ResolveCredentials(translation.KindBaidu, translation.Credentials{}, store)
	if err != nil {
		t.Fatalf("ResolveCredentials() error: %v", err)
	}
	if got.ID != "env-app" || got.Secret != "file-key" {
		t.Fatalf("expected env id and file key, got id=%q", got.ID)
	}

	got, err = ResolveCredentials(translation.KindBaidu, translation.Credentials{ID: "flag-app", Secret: "flag-key"}, store)
	if err != nil {
		t.Fatalf("ResolveCredentials() error: %v", err)
	}
	if got.ID != "flag-app" || got.Secret != "flag-key" {
		t.Fatalf("expected flag values to win, got id=%q", got.ID)
	}
}

func TestCredentialEntry_Redacted(t *testing.T) {
	t.Parallel()

	entry := CredentialEntry{ID: "app-id-value", Secret: "secret-value"}
	for _, out := range []string{fmt.Sprintf("%v", entry), fmt.Sprintf("%#v", entry)} {
		if strings.Contains(out, "secret-value") || strings.Contains(out, "app-id-value") {
			t.Fatalf("entry rendered secret material: %s", out)
		}
	}
}
