package prompt

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/effsub/effsub-cli/internal/output"
)

// confirmModel is a minimal y/n prompt. Enter accepts the default, escape
// and ctrl+c answer no.
type confirmModel struct {
	question   string
	defaultYes bool
	answer     bool
	done       bool
}

func newConfirmModel(question string, defaultYes bool) confirmModel {
	return confirmModel{question: question, defaultYes: defaultYes}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
	case "n", "N":
		m.answer = false
		m.done = true
	case "enter":
		m.answer = m.defaultYes
		m.done = true
	case "esc", "ctrl+c":
		m.answer = false
		m.done = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	hint := "[y/N]"
	if m.defaultYes {
		hint = "[Y/n]"
	}
	return m.question + "\n\n" + output.MutedStyle.Render(hint+" ") + "\n"
}
