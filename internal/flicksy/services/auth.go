package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
	"github.com/flicksy/flicksy-cli/internal/flicksy/session"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// AuthService drives the login and registration forms. On success it hands
// the issued credential and user snapshot to the session manager; the
// manager performs no extra round-trip of its own.
type AuthService struct {
	client   api.Client
	sessions *session.Manager
}

// NewAuthService binds the service to the API client and session manager.
func NewAuthService(client api.Client, sessions *session.Manager) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

// Login authenticates against the backend and installs the resulting
// session. The returned user is the backend snapshot.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}
	if err := s.sessions.Login(ctx, res.AccessToken, res.User); err != nil {
		return models.User{}, fmt.Errorf("persist credential: %w", err)
	}
	return res.User, nil
}

// Register creates an account and logs the new user in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.TrimSpace(req.Email)

	if l := len(req.Username); l < 3 || l > 30 {
		return models.User{}, fmt.Errorf("%w: username must be 3-30 characters", ErrValidation)
	}
	if !usernamePattern.MatchString(req.Username) {
		return models.User{}, fmt.Errorf("%w: username can only contain letters, numbers, and underscores", ErrValidation)
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return models.User{}, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if l := len(req.DisplayName); l < 1 || l > 50 {
		return models.User{}, fmt.Errorf("%w: display name must be 1-50 characters", ErrValidation)
	}
	if len(req.Bio) > 160 {
		return models.User{}, fmt.Errorf("%w: bio must be at most 160 characters", ErrValidation)
	}
	if len(req.Password) < 6 {
		return models.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	res, err := s.client.Register(ctx, req)
	if err != nil {
		return models.User{}, err
	}
	if err := s.sessions.Login(ctx, res.AccessToken, res.User); err != nil {
		return models.User{}, fmt.Errorf("persist credential: %w", err)
	}
	return res.User, nil
}

// Logout delegates to the session manager. Pure local operation.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}
