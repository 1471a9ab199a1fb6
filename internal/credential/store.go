// Package credential locates the provider API key in a local INI file and
// asks for it once when it is missing.
package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/harou24/oa-cli/internal/failure"
)

const (
	// Section is the INI section holding the key.
	Section = "openai"
	// Key is the INI key holding the secret.
	Key = "api_key"

	promptTitle = "Please enter your OpenAI API key"
)

// Prompter asks the user for a single value.
type Prompter interface {
	Prompt(title string) (string, error)
}

// Store resolves the API key from Path, prompting through Prompter when the
// file or the key is missing. Concurrent processes writing the same file are
// not coordinated; the last writer wins.
type Store struct {
	Path     string
	Prompter Prompter

	resolved string
}

// NewStore returns a Store backed by the INI file at path.
func NewStore(path string, p Prompter) *Store {
	return &Store{Path: path, Prompter: p}
}

// writeConfig persists cfg to path. Replaced in tests to count writes.
var writeConfig = writeAtomic

// Resolve returns the API key. A corrupt or unreadable file yields a
// failure.ConfigRead error; an unavailable or empty prompt yields
// failure.NoCredential and leaves the file untouched.
func (s *Store) Resolve() (string, error) {
	if s.resolved != "" {
		return s.resolved, nil
	}

	cfg, err := s.load()
	if err != nil {
		return "", failure.New(failure.ConfigRead, s.Path, err)
	}
	if cfg != nil {
		if key := lookup(cfg); key != "" {
			slog.Debug("api key loaded", "path", s.Path)
			s.resolved = key
			return key, nil
		}
	}

	if s.Prompter == nil {
		return "", failure.New(failure.NoCredential, "", ErrNoInput)
	}
	value, err := s.Prompter.Prompt(promptTitle)
	if err != nil {
		return "", failure.New(failure.NoCredential, "", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", failure.New(failure.NoCredential, "empty API key", nil)
	}

	if cfg == nil {
		cfg = ini.Empty()
	}
	cfg.Section(Section).Key(Key).SetValue(value)
	if err := writeConfig(s.Path, cfg); err != nil {
		return "", fmt.Errorf("persist api key to %s: %w", s.Path, err)
	}
	slog.Debug("api key saved", "path", s.Path)

	s.resolved = value
	return value, nil
}

// load returns nil, nil when the file does not exist.
func (s *Store) load() (*ini.File, error) {
	data, err := os.ReadFile(s.Path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(s.Path), err)
	}
	return cfg, nil
}

func lookup(cfg *ini.File) string {
	sec, err := cfg.GetSection(Section)
	if err != nil || !sec.HasKey(Key) {
		return ""
	}
	return strings.TrimSpace(sec.Key(Key).String())
}

// writeAtomic writes cfg to a temporary file next to path and renames it into
// place, so readers see either the old content or the new one.
func writeAtomic(path string, cfg *ini.File) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".config-*.ini")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = cfg.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
