package subscribe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/effsub/effsub-cli/internal/config"
	"github.com/effsub/effsub-cli/internal/tui/prompt"
)

// Preference is the user's subscription choice from flags or config.
type Preference int

const (
	// PreferenceUnset triggers interactive resolution.
	PreferenceUnset Preference = iota
	// PreferenceYes subscribes without asking for consent.
	PreferenceYes
	// PreferenceNo is an authoritative opt-out; nothing is asked or staged.
	PreferenceNo
)

// MetaStore persists account metadata. *config.AccountStore implements it.
type MetaStore interface {
	UpdateMeta(acc *config.Account) error
}

const consentQuestion = "Would you be willing, once your account is successfully " +
	"registered, to share your email address with the Electronic Frontier " +
	"Foundation, a founding partner of the Let's Encrypt project and the " +
	"non-profit organization that works to encrypt the web? We'd like to send " +
	"you email about our work encrypting the web, EFF news, campaigns, and " +
	"ways to support digital freedom.\n\nIf you don't want to see this prompt " +
	"again, run with the --no-eff-email flag set."

const invalidEmailPrefix = "There seem to be problems with the contact email " +
	"address provided.\n\n"

const nonInteractiveMsg = "EFF mailing list registration must be run " +
	"non-interactively unless both the --eff-email and --eff-email-address " +
	"flags are set"

// Resolver captures the user's consent and stages a pending subscription
// on the account's metadata. It never talks to the network.
type Resolver struct {
	Prompter prompt.Prompter
	Store    MetaStore
	Validate func(email string) bool
	Log      zerolog.Logger
}

// consentState drives the ask-again-on-invalid-email loop. Every pass
// through stateAwaitingConsent requires a fresh affirmative answer, so a
// user who declines exits immediately.
type consentState int

const (
	stateAwaitingConsent consentState = iota
	stateAwaitingEmail
	stateValidating
	stateDone
	stateAbandoned
)

// Prepare decides whether to stage a subscription for acc and persists the
// decision. An explicit opt-out returns immediately. A pending address
// already staged by a prior partial run is persisted even when the user
// declines this time.
func (r *Resolver) Prepare(
	pref Preference, presupplied, contactEmail string, acc *config.Account,
) error {
	if pref == PreferenceNo {
		return nil
	}

	email, err := r.resolve(pref, presupplied, contactEmail)
	if err != nil {
		return err
	}
	if email != "" {
		acc.Meta.PendingSubscription = email
		r.Log.Debug().Str("email", email).Msg("staged pending EFF subscription")
	}

	if acc.Meta.PendingSubscription != "" {
		if err := r.Store.UpdateMeta(acc); err != nil {
			return fmt.Errorf("failed to persist account metadata: %w", err)
		}
	}
	return nil
}

// resolve runs the consent state machine and returns the validated email to
// stage, or "" when the user opted out or abandoned.
func (r *Resolver) resolve(
	pref Preference, presupplied, contactEmail string,
) (string, error) {
	candidate := presupplied
	invalid := false

	state := stateAwaitingConsent
	if pref == PreferenceYes {
		if candidate != "" {
			state = stateValidating
		} else {
			state = stateAwaitingEmail
		}
	}

	for {
		switch state {
		case stateAwaitingConsent:
			question := consentQuestion
			if invalid {
				question = invalidEmailPrefix + consentQuestion
			}
			want, err := r.Prompter.YesNo(question, false)
			if err != nil {
				return "", err
			}
			switch {
			case !want:
				state = stateAbandoned
			case candidate != "" && !invalid:
				state = stateValidating
			default:
				state = stateAwaitingEmail
			}

		case stateAwaitingEmail:
			email, err := r.collectEmail(contactEmail)
			if err != nil {
				return "", err
			}
			candidate = email
			state = stateValidating

		case stateValidating:
			if candidate != "" && r.Validate(candidate) {
				state = stateDone
			} else {
				r.Log.Debug().Str("email", candidate).
					Msg("candidate email failed validation")
				invalid = true
				state = stateAwaitingConsent
			}

		case stateDone:
			return candidate, nil

		case stateAbandoned:
			return "", nil
		}
	}
}

// collectEmail obtains a candidate address: reuse the account's contact
// email if the user agrees, otherwise ask for free-text entry. A cancelled
// entry returns "" so the caller re-enters the consent loop.
func (r *Resolver) collectEmail(contactEmail string) (string, error) {
	if contactEmail != "" {
		question := fmt.Sprintf(
			"Would you like to re-use your email address (%s) for the EFF newsletter?",
			contactEmail)
		reuse, err := r.Prompter.YesNo(question, false)
		if err != nil {
			return "", err
		}
		if reuse {
			return contactEmail, nil
		}
	}

	text, ok, err := r.Prompter.InputText(
		"Enter email address you'd like to share with the EFF")
	if errors.Is(err, prompt.ErrMissingFlag) {
		return "", fmt.Errorf("%s: %w", nonInteractiveMsg, err)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(text), nil
}
