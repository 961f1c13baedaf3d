// Package prompt provides the interactive yes/no and text-entry prompts
// used by the consent flow, plus detection of non-interactive runs.
package prompt

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrMissingFlag signals that a prompt was required but the run has no
// controlling terminal, so the answer must come from a command-line flag.
var ErrMissingFlag = errors.New("terminal input required but unavailable")

// Prompter asks the user questions. Implementations must be safe to call
// from non-interactive contexts: YesNo falls back to its default and
// InputText fails with ErrMissingFlag.
type Prompter interface {
	// YesNo asks a yes/no question; enter accepts the default.
	YesNo(question string, defaultYes bool) (bool, error)
	// InputText asks for one line of free text. ok is false when the user
	// cancelled the prompt.
	InputText(question string) (text string, ok bool, err error)
	// IsInteractive reports whether prompts can actually be shown.
	IsInteractive() bool
}

// TerminalPrompter renders prompts on the controlling terminal.
type TerminalPrompter struct{}

// IsInteractive reports whether stdin is a terminal.
func (TerminalPrompter) IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// YesNo shows a confirm prompt. Non-interactive runs get the default
// without prompting.
func (p TerminalPrompter) YesNo(question string, defaultYes bool) (bool, error) {
	if !p.IsInteractive() {
		return defaultYes, nil
	}

	m, err := tea.NewProgram(newConfirmModel(question, defaultYes)).Run()
	if err != nil {
		return false, err
	}
	return m.(confirmModel).answer, nil
}

// InputText shows a one-line text entry prompt.
func (p TerminalPrompter) InputText(question string) (string, bool, error) {
	if !p.IsInteractive() {
		return "", false, ErrMissingFlag
	}

	m, err := tea.NewProgram(newInputModel(question)).Run()
	if err != nil {
		return "", false, err
	}
	final := m.(inputModel)
	if final.cancelled {
		return "", false, nil
	}
	return final.input.Value(), true, nil
}
