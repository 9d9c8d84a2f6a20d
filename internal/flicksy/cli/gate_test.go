package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/credstore"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
	"github.com/flicksy/flicksy-cli/internal/flicksy/session"
	"github.com/flicksy/flicksy-cli/internal/logging"
)

// newBackend returns a manager wired to a real HTTP client against the
// given test double.
func newBackend(t *testing.T, store credstore.Store, handler http.HandlerFunc) *session.Manager {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var m *session.Manager
	client := api.NewHTTPClient(srv.URL, srv.Client(), sourceFunc(func() string { return m.Credential() }))
	m = session.NewManager(client, store, logging.Discard())
	return m
}

type sourceFunc func() string

func (f sourceFunc) Credential() string { return f() }

func TestRunGated_DelayedBackendOrdering(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save("tok-123"))

	resolved := make(chan struct{})
	m := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		// Hold the response long enough that a premature protected
		// render would be observable.
		select {
		case <-resolved:
			t.Error("backend finished twice")
		default:
		}
		time.Sleep(50 * time.Millisecond)
		close(resolved)
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "ana", DisplayName: "Ana"})
	})

	var events []string
	err := RunGated(context.Background(), m, Views{
		Loading: func() { events = append(events, "loading") },
		Authenticated: func(u models.User) error {
			select {
			case <-resolved:
			default:
				t.Error("protected content rendered before resolution completed")
			}
			events = append(events, "protected:"+u.Username)
			return nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"loading", "protected:ana"}, events)
}

func TestRunGated_RejectedCredentialRendersAnonymous(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save("tok-expired"))

	m := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token"})
	})

	var events []string
	err := RunGated(context.Background(), m, Views{
		Loading:   func() { events = append(events, "loading") },
		Anonymous: func() error { events = append(events, "anonymous"); return nil },
		Authenticated: func(models.User) error {
			t.Error("protected content rendered for a rejected credential")
			return nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"loading", "anonymous"}, events)

	_, loadErr := store.Load()
	require.ErrorIs(t, loadErr, credstore.ErrNoCredential)
}

func TestRunGated_NoCredentialSkipsLoading(t *testing.T) {
	m := newBackend(t, credstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected without a stored credential")
	})

	var events []string
	err := RunGated(context.Background(), m, Views{
		Loading:   func() { events = append(events, "loading") },
		Anonymous: func() error { events = append(events, "anonymous"); return nil },
	})
	require.NoError(t, err)
	require.Equal(t, []string{"anonymous"}, events)
}

func TestRunGated_LoginRequired(t *testing.T) {
	m := newBackend(t, credstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {})

	err := RunGated(context.Background(), m, Views{
		Authenticated: func(models.User) error { return nil },
	})
	require.ErrorIs(t, err, ErrLoginRequired)
}

func TestRunGated_ReusableAfterResolution(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Save("tok-123"))

	m := newBackend(t, store, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "ana"})
	})

	run := func() []string {
		var events []string
		err := RunGated(context.Background(), m, Views{
			Loading:       func() { events = append(events, "loading") },
			Authenticated: func(u models.User) error { events = append(events, "protected"); return nil },
		})
		require.NoError(t, err)
		return events
	}

	require.Equal(t, []string{"loading", "protected"}, run())
	// Resolution happens at most once; later gates render directly.
	require.Equal(t, []string{"protected"}, run())
}
