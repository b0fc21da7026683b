package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenFile persists the single opaque session token across runs — the
// terminal analogue of the browser's local storage. Only the token is ever
// persisted; every other collection is in-memory and refetched on startup.
type TokenFile struct {
	path string
}

// NewTokenFile stores the token at the given path. An empty path defaults
// to budget-compass/token under the user config directory.
func NewTokenFile(path string) (*TokenFile, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "budget-compass", "token")
	}
	return &TokenFile{path: path}, nil
}

// Load reads the stored token. A missing file is not an error: it returns
// "" (no session).
func (t *TokenFile) Load() (string, error) {
	raw, err := os.ReadFile(t.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the token with owner-only permissions.
func (t *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is a no-op, and
// a failed removal is swallowed: logout proceeds either way, a stale file
// only costs one doomed revalidation fetch on the next startup.
func (t *TokenFile) Clear() {
	os.Remove(t.path)
}
