package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

type staticSource string

func (s staticSource) Credential() string { return string(s) }

func TestHTTPClient_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/api/auth/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "ana"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource("tok-123"))

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "ana", user.Username)
}

func TestHTTPClient_NoCredentialNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource(""))

	require.NoError(t, c.Ping(context.Background()))
	require.Empty(t, gotAuth)
}

func TestHTTPClient_UnauthorizedWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource("tok-expired"))

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "Invalid token", Detail(err, "fallback"))
}

func TestHTTPClient_ForbiddenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Admin access required"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource("tok-123"))

	_, err := c.AdminStats(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Post not found"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), nil)

	_, err := c.Comments(context.Background(), "nope", 10, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewHTTPClient(srv.URL, nil, nil)

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_DetailFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), nil)

	err := c.Ping(context.Background())
	require.Error(t, err)
	require.Equal(t, "something went wrong", Detail(err, "something went wrong"))
}

func TestHTTPClient_FeedQueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		require.Equal(t, "40", r.URL.Query().Get("skip"))
		_ = json.NewEncoder(w).Encode([]models.Post{{ID: "p1", Content: "hello #go"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource("tok-123"))

	posts, err := c.Feed(context.Background(), 20, 40)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "p1", posts[0].ID)
}

func TestHTTPClient_ToggleLike(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/posts/p1/like", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"liked": true, "message": "Post liked"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client(), staticSource("tok-123"))

	liked, err := c.ToggleLike(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, liked)
}
