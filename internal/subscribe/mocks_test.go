package subscribe

import (
	"context"

	"github.com/effsub/effsub-cli/internal/config"
)

// mockPrompter replays scripted answers and records the questions asked.
type mockPrompter struct {
	yesNoAnswers   []bool
	yesNoQuestions []string

	inputAnswers []inputAnswer
	inputErr     error
	inputCalls   int
}

type inputAnswer struct {
	text string
	ok   bool
}

func (m *mockPrompter) YesNo(question string, defaultYes bool) (bool, error) {
	m.yesNoQuestions = append(m.yesNoQuestions, question)
	if len(m.yesNoAnswers) == 0 {
		return defaultYes, nil
	}
	answer := m.yesNoAnswers[0]
	m.yesNoAnswers = m.yesNoAnswers[1:]
	return answer, nil
}

func (m *mockPrompter) InputText(question string) (string, bool, error) {
	m.inputCalls++
	if m.inputErr != nil {
		return "", false, m.inputErr
	}
	if len(m.inputAnswers) == 0 {
		return "", false, nil
	}
	answer := m.inputAnswers[0]
	m.inputAnswers = m.inputAnswers[1:]
	return answer.text, answer.ok, nil
}

func (m *mockPrompter) IsInteractive() bool {
	return m.inputErr == nil
}

// recorderStore records UpdateMeta calls without touching disk.
type recorderStore struct {
	updateCalls int
	lastMeta    config.AccountMeta
	err         error
}

func (s *recorderStore) UpdateMeta(acc *config.Account) error {
	s.updateCalls++
	s.lastMeta = acc.Meta
	return s.err
}

// recorderNotifier captures notifications.
type recorderNotifier struct {
	messages []string
}

func (n *recorderNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

// mockClient returns a fixed outcome and records submitted addresses.
type mockClient struct {
	outcome Outcome
	emails  []string
}

func (c *mockClient) Submit(ctx context.Context, email string) Outcome {
	c.emails = append(c.emails, email)
	return c.outcome
}
