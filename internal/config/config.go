// Package config resolves oa's runtime settings from an optional .env file,
// the environment and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the provider API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 60 * time.Second

	// FileName is the credential file name inside the config directory.
	FileName = "config.ini"
)

// Environment variables read by Load.
const (
	EnvConfig  = "OA_CONFIG"
	EnvBaseURL = "OA_BASE_URL"
	EnvTimeout = "OA_TIMEOUT"
	EnvAPIKey  = "OPENAI_API_KEY"
)

// Settings holds everything a command needs before it talks to the provider.
type Settings struct {
	// ConfigPath is the INI file holding the persisted API key.
	ConfigPath string
	BaseURL    string
	Timeout    time.Duration
	// APIKey, when set, is used for this run instead of the persisted key.
	// It is never written to ConfigPath.
	APIKey string
}

// Overrides are flag values; empty fields leave the environment value alone.
type Overrides struct {
	ConfigPath string
	BaseURL    string
	Timeout    time.Duration
	APIKey     string
}

// Dir returns the directory for oa configuration.
// It uses $XDG_CONFIG_HOME/oa if set, otherwise ~/.config/oa.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "oa")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "oa")
}

// DefaultPath returns the default credential file path.
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Load reads .env from the working directory, then the environment, then
// applies o.
func Load(o Overrides) (Settings, error) {
	if err := LoadEnvFile(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	s := Settings{
		ConfigPath: os.Getenv(EnvConfig),
		BaseURL:    os.Getenv(EnvBaseURL),
		Timeout:    DefaultTimeout,
		APIKey:     os.Getenv(EnvAPIKey),
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		s.Timeout = d
	}

	if o.ConfigPath != "" {
		s.ConfigPath = o.ConfigPath
	}
	if o.BaseURL != "" {
		s.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		s.Timeout = o.Timeout
	}
	if o.APIKey != "" {
		s.APIKey = o.APIKey
	}

	if s.ConfigPath == "" {
		s.ConfigPath = DefaultPath()
	}
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	return s, nil
}
