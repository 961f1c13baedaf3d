// Package subscribe implements the EFF mailing-list consent flow and the
// one-shot subscription exchange.
package subscribe

// Outcome classifies the result of one subscription attempt.
type Outcome int

const (
	// Success means the server accepted the subscription.
	Success Outcome = iota
	// InvalidEmail means the server rejected the address.
	InvalidEmail
	// ServerError covers transport failures and non-2xx responses.
	ServerError
	// MalformedResponse covers 2xx responses whose body is not the
	// expected JSON shape.
	MalformedResponse
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case InvalidEmail:
		return "InvalidEmail"
	case ServerError:
		return "ServerError"
	case MalformedResponse:
		return "MalformedResponse"
	default:
		return "Unknown"
	}
}
