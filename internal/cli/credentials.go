package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/me/hotelx/pkg/model"
)

const credentialsFileName = "credentials.json"

// credentialsPath returns the path to the stored token pair
// (~/.hotelx/credentials.json).
func credentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".hotelx", credentialsFileName), nil
}

// saveCredentials writes the token pair with owner-only permissions.
func saveCredentials(pair model.TokenPair) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// loadCredentials reads the stored token pair, reporting ok=false when no
// usable credentials exist.
func loadCredentials() (pair model.TokenPair, ok bool) {
	path, err := credentialsPath()
	if err != nil {
		return model.TokenPair{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TokenPair{}, false
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return model.TokenPair{}, false
	}
	if pair.JWT == "" || pair.RefreshToken == "" {
		return model.TokenPair{}, false
	}
	return pair, true
}

// clearCredentials removes the stored token pair. A missing file is fine.
func clearCredentials() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
