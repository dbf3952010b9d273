// Package credentials persists EasyPost API keys, one per mode, in a dotenv
// style file under the per-user CLI directory.
//
// The file is append-only. When a key appears several times the last line
// wins, and a non-empty environment variable of the same name overrides the
// file entirely.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/common"
	"github.com/dmitrijs2005/easypost-cli/internal/filex"
	"github.com/joho/godotenv"
)

// Store reads and appends API keys.
type Store struct {
	path   string
	lookup func(string) (string, bool)
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path, lookup: os.LookupEnv}
}

// DefaultPath returns ~/.easypost-cli/config.
func DefaultPath() (string, error) {
	dir, err := filex.UserDir(common.AppDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.CredentialsFileName), nil
}

// Path is the absolute location of the credential file.
func (s *Store) Path() string { return s.path }

// DisplayPath is Path with the home directory shown as "~".
func (s *Store) DisplayPath() string { return filex.DisplayPath(s.path) }

// Load returns the key stored for mode, if any.
func (s *Store) Load(mode string) (string, bool) {
	name := common.APIKeyName(mode)

	if v, ok := s.lookup(name); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}

	// godotenv.Read fills a map line by line, so a later duplicate
	// overwrites an earlier one.
	env, err := godotenv.Read(s.path)
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(env[name])
	if v == "" {
		return "", false
	}
	return v, true
}

// Save appends a line for mode. Existing lines are left untouched.
func (s *Store) Save(mode, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return common.ErrEmptyAPIKey
	}
	if strings.ContainsAny(key, "\r\n") {
		return errors.New("api key must be a single line")
	}

	if _, err := filex.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open credentials: %w", err)
	}
	defer f.Close()

	if err := ensureTrailingNewline(f, s.path); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(f, "%s=%s\n", common.APIKeyName(mode), key); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// ensureTrailingNewline keeps a hand-edited file without a final newline
// from gluing the appended line onto its last one.
func ensureTrailingNewline(f *os.File, path string) error {
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read credentials: %w", err)
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("write credentials: %w", err)
		}
	}
	return nil
}
