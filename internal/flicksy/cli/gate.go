package cli

import (
	"context"
	"errors"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
	"github.com/flicksy/flicksy-cli/internal/flicksy/session"
)

// ErrLoginRequired is returned by RunGated when the session resolves to
// anonymous and the command has no anonymous rendering.
var ErrLoginRequired = errors.New("not logged in")

// Views groups the three renderings a gated command can produce. Loading
// is shown while the session is resolving; Anonymous when the session
// resolves without an identity; Authenticated once an identity is
// confirmed. A nil Anonymous turns a logged-out resolution into
// ErrLoginRequired.
type Views struct {
	Loading       func()
	Anonymous     func() error
	Authenticated func(models.User) error
}

// RunGated is the single gating decision point between session state and
// rendering. It triggers resolution if it has not happened yet, shows the
// loading indicator for exactly the span of the resolution round-trip,
// and only after a terminal state is reached picks one of the two
// remaining views. Protected content is therefore unreachable while the
// session is still resolving, by construction rather than by per-view
// checks.
func RunGated(ctx context.Context, sessions *session.Manager, v Views) error {
	unsubscribe := sessions.Subscribe(func(s session.Session) {
		if s.State == session.StateResolving && v.Loading != nil {
			v.Loading()
		}
	})
	defer unsubscribe()

	if err := sessions.Initialize(ctx); err != nil && !errors.Is(err, session.ErrAlreadyResolved) {
		return err
	}

	snap := sessions.Snapshot()
	if snap.LoggedIn() {
		return v.Authenticated(*snap.User)
	}
	if v.Anonymous == nil {
		return ErrLoginRequired
	}
	return v.Anonymous()
}
