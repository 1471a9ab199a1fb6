// Package redact strips API keys from text before it reaches the terminal or
// the log.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variables whose values must never be
// printed.
var sensitiveEnvVars = []string{
	"OPENAI_API_KEY",
	"OA_API_KEY",
}

var (
	mu      sync.Mutex
	secrets []string
	loaded  bool
)

func loadEnv() {
	if loaded {
		return
	}
	loaded = true
	for _, name := range sensitiveEnvVars {
		addLocked(os.Getenv(name))
	}
}

func addLocked(s string) {
	// Short values would cause false positives.
	if len(s) < 4 {
		return
	}
	for _, existing := range secrets {
		if existing == s {
			return
		}
	}
	secrets = append(secrets, s)
}

// Register adds a secret resolved at runtime, such as a key read from the
// config file.
func Register(secret string) {
	mu.Lock()
	defer mu.Unlock()
	loadEnv()
	addLocked(secret)
}

// String replaces every known secret in s with "[REDACTED]".
func String(s string) string {
	mu.Lock()
	defer mu.Unlock()
	loadEnv()
	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}

// Mask shortens a key to its first and last four characters for debug
// output.
func Mask(key string) string {
	if len(key) < 12 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// ResetForTest forgets all registered secrets.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
	loaded = false
}
