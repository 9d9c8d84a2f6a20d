// Package session owns the authentication credential and current-user
// identity for the lifetime of the process. It is the single source of
// truth for "who is the current actor": every other component reads the
// session and issues authenticated requests through its credential, but
// mutation is confined to the three operations Initialize, Login and
// Logout.
package session

import "github.com/flicksy/flicksy-cli/internal/flicksy/models"

// State is the resolution state of the session.
//
// The machine is linear: unresolved → resolving → {anonymous,
// authenticated}. Afterwards only Login (anonymous → authenticated) and
// Logout or a failed re-validation (authenticated → anonymous) move it.
// resolving is entered at most once per process, inside Initialize.
type State string

const (
	StateUnresolved    State = "unresolved"
	StateResolving     State = "resolving"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Resolved reports whether the state is terminal, i.e. the UI may stop
// showing a loading indicator.
func (s State) Resolved() bool {
	return s == StateAnonymous || s == StateAuthenticated
}

// Session is an immutable snapshot of the manager's state. User is non-nil
// exactly when State is StateAuthenticated; credential and user are always
// set and cleared together.
type Session struct {
	State      State
	Credential string
	User       *models.User
}

// LoggedIn reports whether the snapshot carries a confirmed identity.
func (s Session) LoggedIn() bool {
	return s.State == StateAuthenticated && s.User != nil
}
