package subscribe

import "strings"

// RetryURL is where users can subscribe manually after a failed attempt.
const RetryURL = "https://act.eff.org"

// Notifier delivers a fire-and-forget user-visible message.
type Notifier interface {
	Notify(msg string)
}

// Reporter turns non-Success outcomes into a single user notification.
// Success is silent.
type Reporter struct {
	Notifier Notifier
}

// Report notifies the user about a failed subscription attempt.
func (r *Reporter) Report(outcome Outcome) {
	switch outcome {
	case Success:
	case InvalidEmail:
		r.Notifier.Notify(failureMessage("your e-mail address appears to be invalid"))
	case MalformedResponse:
		r.Notifier.Notify(failureMessage("there was a problem with the server response"))
	default:
		r.Notifier.Notify(failureMessage(""))
	}
}

// failureMessage builds the user-facing failure text. reason is a phrase
// beginning with a lowercase letter and no closing punctuation; it is
// omitted when empty.
func failureMessage(reason string) string {
	var b strings.Builder
	b.WriteString("We were unable to subscribe you the EFF mailing list")
	if reason != "" {
		b.WriteString(" because ")
		b.WriteString(reason)
	}
	b.WriteString(". You can try again later by visiting ")
	b.WriteString(RetryURL)
	b.WriteString(".")
	return b.String()
}
