// Package prompt presents interactive choices on the terminal.
//
// The Terminal prompter renders huh select/confirm forms; NonInteractive
// answers every question with its default without blocking, which is what
// batch and unattended runs use. Detect picks between them based on the
// --yes flag and whether stdin is a TTY.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt (ctrl-c, esc).
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user questions. Implementations must honor the default
// when the user gives no other answer.
type Prompter interface {
	// ChooseOne presents labeled options and returns the selected index.
	ChooseOne(ctx context.Context, message string, options []string, defaultIndex int) (int, error)
	// ConfirmYesNo asks a yes/no question.
	ConfirmYesNo(ctx context.Context, message string, defaultYes bool) (bool, error)
}

// Detect returns the prompter for this invocation: NonInteractive when the
// caller forced it or stdin is not a terminal, Terminal otherwise.
func Detect(forceNonInteractive bool) Prompter {
	if forceNonInteractive {
		return NonInteractive{}
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return NonInteractive{}
	}
	return Terminal{}
}

// Terminal prompts on the controlling terminal via huh.
type Terminal struct{}

func (Terminal) ChooseOne(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to choose from")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	opts := make([]huh.Option[int], 0, len(options))
	for i, label := range options {
		opts = append(opts, huh.NewOption(label, i))
	}

	selected := defaultIndex
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(message).
			Options(opts...).
			Value(&selected),
	))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrAborted
		}
		return 0, fmt.Errorf("selection prompt: %w", err)
	}
	return selected, nil
}

func (Terminal) ConfirmYesNo(ctx context.Context, message string, defaultYes bool) (bool, error) {
	answer := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return answer, nil
}

// NonInteractive resolves every prompt to its default without blocking.
type NonInteractive struct{}

func (NonInteractive) ChooseOne(_ context.Context, _ string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to choose from")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	return defaultIndex, nil
}

func (NonInteractive) ConfirmYesNo(_ context.Context, _ string, defaultYes bool) (bool, error) {
	return defaultYes, nil
}
