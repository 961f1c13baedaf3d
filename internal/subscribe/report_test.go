package subscribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	t.Run("success produces no notification", func(t *testing.T) {
		notifier := &recorderNotifier{}
		(&Reporter{Notifier: notifier}).Report(Success)
		assert.Empty(t, notifier.messages)
	})

	t.Run("invalid email names the reason", func(t *testing.T) {
		notifier := &recorderNotifier{}
		(&Reporter{Notifier: notifier}).Report(InvalidEmail)
		assert.Equal(t, []string{
			"We were unable to subscribe you the EFF mailing list because " +
				"your e-mail address appears to be invalid. " +
				"You can try again later by visiting https://act.eff.org.",
		}, notifier.messages)
	})

	t.Run("malformed response names the reason", func(t *testing.T) {
		notifier := &recorderNotifier{}
		(&Reporter{Notifier: notifier}).Report(MalformedResponse)
		assert.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0],
			"because there was a problem with the server response")
	})

	t.Run("server error has no reason clause", func(t *testing.T) {
		notifier := &recorderNotifier{}
		(&Reporter{Notifier: notifier}).Report(ServerError)
		assert.Equal(t, []string{
			"We were unable to subscribe you the EFF mailing list. " +
				"You can try again later by visiting https://act.eff.org.",
		}, notifier.messages)
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "InvalidEmail", InvalidEmail.String())
	assert.Equal(t, "ServerError", ServerError.String())
	assert.Equal(t, "MalformedResponse", MalformedResponse.String())
}
