package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvBaseURL, EnvTimeout, EnvAPIKey} {
		t.Setenv(k, "")
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "oa"), Dir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "oa", "config.ini"), DefaultPath())
}

func TestDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "oa"), Dir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	testChdir(t, t.TempDir())

	s, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, DefaultTimeout, s.Timeout)
	assert.Equal(t, filepath.Join("/tmp/xdg", "oa", "config.ini"), s.ConfigPath)
	assert.Empty(t, s.APIKey)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())
	t.Setenv(EnvBaseURL, "http://env.local/v1")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvConfig, "/env/config.ini")

	s, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://env.local/v1", s.BaseURL)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, "/env/config.ini", s.ConfigPath)

	s, err = Load(Overrides{BaseURL: "http://flag.local/v1", Timeout: time.Second, APIKey: "sk-flag"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.local/v1", s.BaseURL)
	assert.Equal(t, time.Second, s.Timeout)
	assert.Equal(t, "sk-flag", s.APIKey)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	testChdir(t, t.TempDir())
	t.Setenv(EnvTimeout, "soon")

	_, err := Load(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is set, even to "".
	os.Unsetenv(EnvBaseURL) //nolint:errcheck // restored by t.Setenv cleanup
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OA_BASE_URL=http://dotenv.local/v1\n"), 0o600))

	s, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.local/v1", s.BaseURL)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
