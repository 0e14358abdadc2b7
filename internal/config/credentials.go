package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"horse.fit/fusiontranslate/internal/translation"
)

const (
	credentialsDirName  = "fusiontranslate"
	credentialsFileName = "credentials.yaml"
)

// CredentialEntry is one provider's stored secret material. See
// translation.Credentials for what ID and Secret mean per provider.
type CredentialEntry struct {
	ID     string `yaml:"id,omitempty"`
	Secret string `yaml:"secret,omitempty"`
}

func (e CredentialEntry) String() string {
	return "CredentialEntry{redacted}"
}

func (e CredentialEntry) GoString() string {
	return e.String()
}

func (e CredentialEntry) Credentials() translation.Credentials {
	return translation.Credentials{ID: e.ID, Secret: e.Secret}
}

// CredentialStore is the YAML credentials file, keyed by canonical provider
// name:
//
//	baidu:
//	  id: "2015063000000001"
//	  secret: "12345678"
//	caiyun:
//	  secret: "token"
type CredentialStore map[string]CredentialEntry

// DefaultCredentialsPath is $XDG_CONFIG_HOME/fusiontranslate/credentials.yaml,
// or ~/.config/fusiontranslate/credentials.yaml.
func DefaultCredentialsPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, credentialsDirName, credentialsFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", credentialsDirName, credentialsFileName), nil
}

// LoadCredentials reads the store at path. A missing file is an empty store.
func LoadCredentials(path string) (CredentialStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(CredentialStore), nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var store CredentialStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse credentials file %s: %w", path, err)
	}
	if store == nil {
		store = make(CredentialStore)
	}

	normalized := make(CredentialStore, len(store))
	for name, entry := range store {
		kind, err := translation.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("credentials file %s: %w", path, err)
		}
		normalized[kind.String()] = entry
	}
	return normalized, nil
}

// SaveCredentials writes the store with 0600 permissions, creating the
// parent directory with 0700.
func SaveCredentials(path string, store CredentialStore) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restrict credentials file: %w", err)
	}
	return nil
}

func (s CredentialStore) Get(kind translation.Kind) CredentialEntry {
	return s[kind.String()]
}

func (s CredentialStore) Set(kind translation.Kind, entry CredentialEntry) {
	s[kind.String()] = entry
}

// Remove reports whether an entry existed.
func (s CredentialStore) Remove(kind translation.Kind) bool {
	if _, ok := s[kind.String()]; !ok {
		return false
	}
	delete(s, kind.String())
	return true
}

// Providers lists stored provider names in sorted order.
func (s CredentialStore) Providers() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveCredentials applies the lookup order: explicit flag values, then
// provider environment variables, then the credentials file. Each field is
// resolved independently.
func ResolveCredentials(kind translation.Kind, flags translation.Credentials, store CredentialStore) (translation.Credentials, error) {
	env, err := translation.CredentialsFromEnv(kind)
	if err != nil {
		return translation.Credentials{}, err
	}
	return flags.Merge(env).Merge(store.Get(kind).Credentials()), nil
}
