package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/effsub/effsub-cli/internal/output"
)

// inputModel is a one-line text entry prompt. Escape and ctrl+c cancel.
type inputModel struct {
	question  string
	input     textinput.Model
	cancelled bool
	done      bool
}

func newInputModel(question string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 254
	ti.Focus()
	return inputModel{question: question, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, isKey := msg.(tea.KeyMsg); isKey {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.question + "\n\n" + m.input.View() + "\n\n" +
		output.MutedStyle.Render("enter to confirm • esc to cancel") + "\n"
}
