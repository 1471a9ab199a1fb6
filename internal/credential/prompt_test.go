package credential

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := stdinIsTerminal
	t.Cleanup(func() { stdinIsTerminal = orig })
	stdinIsTerminal = func() bool { return tty }
}

func stubRunner(t *testing.T, fn func(string, *string) error) {
	t.Helper()
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = fn
}

func TestHuhPrompter_UsesRunner(t *testing.T) {
	stubTerminal(t, true)
	var gotTitle string
	stubRunner(t, func(title string, v *string) error {
		gotTitle = title
		*v = "sk-typed"
		return nil
	})

	got, err := HuhPrompter{}.Prompt("Enter key")
	require.NoError(t, err)
	assert.Equal(t, "sk-typed", got)
	assert.Equal(t, "Enter key", gotTitle)
}

func TestHuhPrompter_NoTerminal(t *testing.T) {
	stubTerminal(t, false)
	stubRunner(t, func(string, *string) error {
		t.Fatal("prompt must not run without a terminal")
		return nil
	})

	_, err := HuhPrompter{}.Prompt("Enter key")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestHuhPrompter_Aborted(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t, func(string, *string) error { return huh.ErrUserAborted })

	_, err := HuhPrompter{}.Prompt("Enter key")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestHuhPrompter_WrapsError(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t, func(string, *string) error { return errors.New("tty unavailable") })

	_, err := HuhPrompter{}.Prompt("Enter key")
	require.Error(t, err)
	assert.Equal(t, "prompt input: tty unavailable", err.Error())
}
