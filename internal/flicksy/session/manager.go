package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/credstore"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
	"github.com/flicksy/flicksy-cli/internal/logging"
)

// ErrAlreadyResolved is returned by Initialize when resolution already ran.
var ErrAlreadyResolved = errors.New("session already resolved")

// Resolver is the backend call Initialize needs: exchange the active
// credential for the current user snapshot. api.Client satisfies it.
type Resolver interface {
	Me(ctx context.Context) (models.User, error)
}

// Manager mediates all access to the credential and identity. It
// implements api.CredentialSource, so an api.Client wired to it
// authenticates every request with whatever credential is active.
type Manager struct {
	resolver Resolver
	store    credstore.Store
	log      logging.Logger

	mu         sync.Mutex
	state      State
	credential string
	user       *models.User
	nextSub    int
	subs       map[int]func(Session)
}

var _ api.CredentialSource = (*Manager)(nil)

// NewManager builds an unresolved Manager over the given resolver and
// credential store.
func NewManager(resolver Resolver, store credstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		resolver: resolver,
		store:    store,
		log:      log,
		state:    StateUnresolved,
		subs:     make(map[int]func(Session)),
	}
}

// Initialize resolves a possibly-present persisted credential into a
// terminal session state. With no stored credential it reaches
// StateAnonymous without any network call. With one, it enters
// StateResolving, validates the credential against the backend, and ends
// authenticated on success or anonymous on any failure. A failed
// validation discards the credential from memory and storage alike;
// network unavailability and an explicit authorization rejection are
// deliberately treated the same, so a single failure always lands in the
// logged-out state rather than presenting inconsistent authenticated UI.
//
// Initialize may run at most once per process; later calls return
// ErrAlreadyResolved.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateUnresolved {
		m.mu.Unlock()
		return ErrAlreadyResolved
	}

	credential, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, credstore.ErrNoCredential) {
			m.log.Warn(ctx, "credential store unreadable, treating as logged out", "error", err)
		}
		m.transitionLocked(ctx, StateAnonymous, "", nil)
		return nil
	}

	m.transitionLocked(ctx, StateResolving, credential, nil)

	// The resolver reads the credential back through Credential(), so the
	// lock must not be held across the round-trip.
	user, err := m.resolver.Me(ctx)

	m.mu.Lock()
	if err != nil {
		m.log.Info(ctx, "stored credential rejected, logging out", "error", err)
		if clearErr := m.store.Clear(); clearErr != nil {
			m.log.Warn(ctx, "clearing stored credential failed", "error", clearErr)
		}
		m.transitionLocked(ctx, StateAnonymous, "", nil)
		return nil
	}

	m.log.Info(ctx, "session resolved", "username", user.Username)
	m.transitionLocked(ctx, StateAuthenticated, credential, &user)
	return nil
}

// Login installs a credential and user snapshot obtained from a prior
// successful login or registration call. The credential is persisted
// before the in-memory state changes, so a persistence failure leaves the
// session untouched. No backend round-trip happens here.
func (m *Manager) Login(ctx context.Context, credential string, user models.User) error {
	if err := m.store.Save(credential); err != nil {
		return err
	}

	m.mu.Lock()
	m.transitionLocked(ctx, StateAuthenticated, credential, &user)
	return nil
}

// Logout clears the persisted and in-memory credential and identity
// together. It is a pure local operation: it never contacts the backend
// and is idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	m.mu.Lock()
	if m.state == StateAnonymous {
		m.mu.Unlock()
		return nil
	}
	m.transitionLocked(ctx, StateAnonymous, "", nil)
	return nil
}

// Credential returns the active bearer credential, or "" when logged out.
func (m *Manager) Credential() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential
}

// State returns the current resolution state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the confirmed identity, if any.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Snapshot returns a consistent read-only view of the session.
func (m *Manager) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to be called on every state transition with the
// post-transition snapshot. The returned function cancels the
// subscription. Subscribers are invoked synchronously, in registration
// order, after the transition is committed; they observe a consistent
// snapshot and may read the manager freely but must not mutate it.
func (m *Manager) Subscribe(fn func(Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) snapshotLocked() Session {
	s := Session{State: m.state, Credential: m.credential}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// transitionLocked commits a state change and notifies subscribers.
// It must be entered with the lock held; it releases the lock before
// invoking subscribers so they can call back into the manager.
func (m *Manager) transitionLocked(ctx context.Context, state State, credential string, user *models.User) {
	m.state = state
	m.credential = credential
	m.user = user
	snap := m.snapshotLocked()

	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(Session), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, m.subs[id])
	}
	m.mu.Unlock()

	m.log.Debug(ctx, "session transition", "state", string(state))
	for _, fn := range subs {
		fn(snap)
	}
}
