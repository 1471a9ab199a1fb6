package credential

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrNoInput is returned when there is no terminal to prompt on.
var ErrNoInput = errors.New("no interactive input available")

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var runInputPrompt = func(title string, value *string) error {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(value).
		Run()
}

// HuhPrompter asks for the key with a masked huh input.
type HuhPrompter struct{}

func (HuhPrompter) Prompt(title string) (string, error) {
	if !stdinIsTerminal() {
		return "", ErrNoInput
	}
	var value string
	if err := runInputPrompt(title, &value); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return value, nil
}
