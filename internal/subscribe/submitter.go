package subscribe

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/effsub/effsub-cli/internal/config"
)

// SubmitClient performs one subscription attempt.
type SubmitClient interface {
	Submit(ctx context.Context, email string) Outcome
}

// Submitter consumes a pending subscription staged on an account and
// attempts delivery exactly once. The pending flag is cleared after the
// attempt regardless of outcome, so a failure is never silently retried.
type Submitter struct {
	Client   SubmitClient
	Store    MetaStore
	Reporter *Reporter
	Log      zerolog.Logger
}

// Handle submits acc's pending subscription, if any. Dry runs and nil
// accounts are no-ops. A failed subscription is reported to the user but is
// not an error; only a store failure propagates.
func (s *Submitter) Handle(
	ctx context.Context, acc *config.Account, dryRun bool,
) error {
	if dryRun || acc == nil {
		return nil
	}
	email := acc.Meta.PendingSubscription
	if email == "" {
		return nil
	}

	outcome := s.Client.Submit(ctx, email)
	s.Log.Debug().Stringer("outcome", outcome).Str("email", email).
		Msg("subscription attempt finished")
	s.Reporter.Report(outcome)

	// Cleared unconditionally: at most one attempt per staged address.
	acc.Meta.PendingSubscription = ""
	if err := s.Store.UpdateMeta(acc); err != nil {
		return fmt.Errorf("failed to clear pending subscription: %w", err)
	}
	return nil
}
