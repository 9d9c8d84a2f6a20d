package devserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &Config{
		Version:       "test",
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    4,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
	srv, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		srv.rdb.Close()
		srv.mini.Close()
	})
	return srv
}

// request issues one request against the in-process app and decodes the
// JSON reply into out when non-nil.
func request(t *testing.T, app *fiber.App, method, path, token string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func registerUser(t *testing.T, app *fiber.App, username string) models.AuthResult {
	t.Helper()
	var auth models.AuthResult
	status := request(t, app, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Username:    username,
		Email:       username + "@example.com",
		DisplayName: username,
		Password:    "password1",
	}, &auth)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, auth.AccessToken)
	return auth
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	status := request(t, srv.App(), http.MethodGet, "/api/", "", nil, &body)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "test", body["version"])
}

func TestRegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()

	auth := registerUser(t, app, "ana")
	require.Equal(t, "ana", auth.User.Username)
	require.Equal(t, models.RoleUser, auth.User.Role)

	var login models.AuthResult
	status := request(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "ana", "password": "password1"}, &login)
	require.Equal(t, http.StatusOK, status)

	var me models.User
	status = request(t, app, http.MethodGet, "/api/auth/me", login.AccessToken, nil, &me)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, auth.User.ID, me.ID)
}

func TestLoginBadPassword(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	registerUser(t, app, "ana")

	var errBody map[string]string
	status := request(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "ana", "password": "wrong"}, &errBody)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Invalid username or password", errBody["detail"])
}

func TestMeRejectsBadToken(t *testing.T) {
	srv := newTestServer(t)
	status := request(t, srv.App(), http.MethodGet, "/api/auth/me", "tok-expired", nil, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	registerUser(t, app, "ana")

	var errBody map[string]string
	status := request(t, app, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Username:    "ana",
		Email:       "other@example.com",
		DisplayName: "Ana",
		Password:    "password1",
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Username already registered", errBody["detail"])
}

func TestPostsLikesComments(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	ana := registerUser(t, app, "ana")
	bob := registerUser(t, app, "bob")

	var post models.Post
	status := request(t, app, http.MethodPost, "/api/posts", ana.AccessToken,
		map[string]string{"content": "hello world"}, &post)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "ana", post.AuthorUsername)

	var like struct {
		Liked bool `json:"liked"`
	}
	path := fmt.Sprintf("/api/posts/%s/like", post.ID)
	status = request(t, app, http.MethodPost, path, bob.AccessToken, nil, &like)
	require.Equal(t, http.StatusOK, status)
	require.True(t, like.Liked)

	// The feed reflects bob's like only for bob.
	var feed []models.Post
	status = request(t, app, http.MethodGet, "/api/posts", bob.AccessToken, nil, &feed)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, feed, 1)
	require.Equal(t, 1, feed[0].LikesCount)
	require.True(t, feed[0].LikedByUser)

	status = request(t, app, http.MethodGet, "/api/posts", ana.AccessToken, nil, &feed)
	require.Equal(t, http.StatusOK, status)
	require.False(t, feed[0].LikedByUser)

	// Second toggle removes the like.
	status = request(t, app, http.MethodPost, path, bob.AccessToken, nil, &like)
	require.Equal(t, http.StatusOK, status)
	require.False(t, like.Liked)

	var comment models.Comment
	status = request(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/comments", post.ID),
		bob.AccessToken, map[string]string{"content": "nice"}, &comment)
	require.Equal(t, http.StatusCreated, status)

	var comments []models.Comment
	status = request(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%s/comments", post.ID),
		"", nil, &comments)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, comments, 1)
	require.Equal(t, "bob", comments[0].AuthorUsername)
}

func TestPostValidation(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	ana := registerUser(t, app, "ana")

	status := request(t, app, http.MethodPost, "/api/posts", ana.AccessToken,
		map[string]string{"content": "   "}, nil)
	require.Equal(t, http.StatusBadRequest, status)

	status = request(t, app, http.MethodPost, "/api/posts", "", map[string]string{"content": "x"}, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	ana := registerUser(t, app, "ana")
	registerUser(t, app, "anatole")

	status := request(t, app, http.MethodPost, "/api/posts", ana.AccessToken,
		map[string]string{"content": "go gophers assemble"}, nil)
	require.Equal(t, http.StatusCreated, status)

	var res models.SearchResults
	status = request(t, app, http.MethodGet, "/api/search?q=ana", "", nil, &res)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, res.Users, 2)
	require.Empty(t, res.Posts)

	status = request(t, app, http.MethodGet, "/api/search?q=gophers", "", nil, &res)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, res.Posts, 1)
}

func TestTrendingAccumulates(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	ana := registerUser(t, app, "ana")

	for _, content := range []string{"all in on #golang", "#golang rocks", "try #fiber"} {
		status := request(t, app, http.MethodPost, "/api/posts", ana.AccessToken,
			map[string]string{"content": content}, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	var topics []models.TrendingTopic
	status := request(t, app, http.MethodGet, "/api/trending", "", nil, &topics)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, topics, 2)
	require.Equal(t, "#golang", topics[0].Tag)
	require.Equal(t, int64(2), topics[0].Count)
	require.Equal(t, "#fiber", topics[1].Tag)
}

func TestVerificationReviewFlow(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	ana := registerUser(t, app, "ana")

	var admin models.AuthResult
	status := request(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "admin", "password": "admin123"}, &admin)
	require.Equal(t, http.StatusOK, status)
	require.True(t, admin.User.IsAdmin())

	// Non-admin callers are rejected from the dashboard.
	status = request(t, app, http.MethodGet, "/api/admin/stats", ana.AccessToken, nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	var req models.VerificationRequest
	status = request(t, app, http.MethodPost, "/api/verification/requests", ana.AccessToken,
		map[string]string{"reason": "I am the real ana"}, &req)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, models.VerificationPending, req.Status)

	// A second pending request is refused.
	status = request(t, app, http.MethodPost, "/api/verification/requests", ana.AccessToken,
		map[string]string{"reason": "again"}, nil)
	require.Equal(t, http.StatusBadRequest, status)

	var pending []models.VerificationRequest
	status = request(t, app, http.MethodGet, "/api/admin/verification/requests?status=pending",
		admin.AccessToken, nil, &pending)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, pending, 1)

	var reviewed models.VerificationRequest
	status = request(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/verification/requests/%s/review", req.ID),
		admin.AccessToken, map[string]any{"approve": true, "note": "welcome"}, &reviewed)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.VerificationApproved, reviewed.Status)

	// Approval flips the badge on the profile.
	var me models.User
	status = request(t, app, http.MethodGet, "/api/auth/me", ana.AccessToken, nil, &me)
	require.Equal(t, http.StatusOK, status)
	require.True(t, me.IsVerified)

	var stats models.AdminStats
	status = request(t, app, http.MethodGet, "/api/admin/stats", admin.AccessToken, nil, &stats)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, stats.Users)
	require.Equal(t, 0, stats.PendingVerifications)
}

func TestProfileLookup(t *testing.T) {
	srv := newTestServer(t)
	app := srv.App()
	registerUser(t, app, "ana")

	var profile models.User
	status := request(t, app, http.MethodGet, "/api/users/ana", "", nil, &profile)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ana", profile.Username)
	require.Empty(t, profile.Email)

	var errBody map[string]string
	status = request(t, app, http.MethodGet, "/api/users/ghost", "", nil, &errBody)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "User not found", errBody["detail"])
}
