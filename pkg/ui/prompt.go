// Package ui holds the interactive prompt layer. Commands consume the
// small Selector/Confirmer interfaces so business logic stays testable;
// the console implementations sit on pterm and refuse to run without an
// attached terminal instead of blocking forever.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/unikit-dev/unikit/pkg/errors"
)

// Selector presents a labeled single-choice prompt and returns the chosen
// label.
type Selector interface {
	Select(message string, choices []string) (string, error)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// IsTerminal reports whether stdout is attached to an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ConsoleSelector implements Selector with a pterm interactive list.
type ConsoleSelector struct{}

// NewConsoleSelector creates a console-backed Selector.
func NewConsoleSelector() *ConsoleSelector {
	return &ConsoleSelector{}
}

// Select shows an interactive single-choice list and blocks until the
// operator picks an entry. Fails instead of hanging when no terminal is
// attached.
func (s *ConsoleSelector) Select(message string, choices []string) (string, error) {
	if !IsTerminal() {
		return "", errors.New(errors.ErrNotInteractive,
			"cannot prompt for a choice in a non-interactive session")
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(choices).
		Show(message)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPromptFailed, "selection prompt failed")
	}
	return choice, nil
}

// DisabledPrompts implements Selector and Confirmer by refusing every
// prompt. Used when prompting is switched off in the settings.
type DisabledPrompts struct{}

// Select fails with NOT_INTERACTIVE.
func (DisabledPrompts) Select(message string, choices []string) (string, error) {
	return "", errors.New(errors.ErrNotInteractive, "prompts are disabled")
}

// Confirm fails with NOT_INTERACTIVE.
func (DisabledPrompts) Confirm(message string) (bool, error) {
	return false, errors.New(errors.ErrNotInteractive, "prompts are disabled")
}

// ConsoleConfirmer implements Confirmer with a pterm yes/no prompt.
type ConsoleConfirmer struct{}

// NewConsoleConfirmer creates a console-backed Confirmer.
func NewConsoleConfirmer() *ConsoleConfirmer {
	return &ConsoleConfirmer{}
}

// Confirm asks a yes/no question, defaulting to no. Fails instead of
// hanging when no terminal is attached.
func (c *ConsoleConfirmer) Confirm(message string) (bool, error) {
	if !IsTerminal() {
		return false, errors.New(errors.ErrNotInteractive,
			"cannot prompt for confirmation in a non-interactive session")
	}

	ok, err := pterm.DefaultInteractiveConfirm.Show(message)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPromptFailed, "confirmation prompt failed")
	}
	return ok, nil
}
