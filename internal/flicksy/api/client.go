package api

import (
	"context"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// CredentialSource supplies the bearer credential for authenticated
// requests. An empty string means no credential is active and the request
// goes out unauthenticated.
type CredentialSource interface {
	Credential() string
}

// Client is the API contract the rest of the client programs against.
type Client interface {
	// Ping checks backend reachability.
	Ping(ctx context.Context) error

	// Register creates an account and returns its first credential.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login exchanges username/password for a credential and snapshot.
	Login(ctx context.Context, username, password string) (models.AuthResult, error)

	// Me resolves the active credential into the current user snapshot.
	Me(ctx context.Context) (models.User, error)

	// Profile fetches a public profile by username.
	Profile(ctx context.Context, username string) (models.User, error)

	// Feed returns the reverse-chronological post feed.
	Feed(ctx context.Context, limit, skip int) ([]models.Post, error)

	// CreatePost publishes a new post.
	CreatePost(ctx context.Context, content string) (models.Post, error)

	// ToggleLike likes or unlikes a post; reports the resulting state.
	ToggleLike(ctx context.Context, postID string) (bool, error)

	// Comments lists a post's comments, oldest first.
	Comments(ctx context.Context, postID string, limit, skip int) ([]models.Comment, error)

	// CreateComment replies to a post.
	CreateComment(ctx context.Context, postID, content string) (models.Comment, error)

	// Search looks up users and posts matching a query.
	Search(ctx context.Context, query string, limit int) (models.SearchResults, error)

	// Trending returns the hashtag leaderboard.
	Trending(ctx context.Context, limit int) ([]models.TrendingTopic, error)

	// RequestVerification applies for the verified badge.
	RequestVerification(ctx context.Context, reason string) (models.VerificationRequest, error)

	// MyVerification returns the caller's latest verification request.
	MyVerification(ctx context.Context) (models.VerificationRequest, error)

	// AdminStats returns the dashboard summary. Admin role required.
	AdminStats(ctx context.Context) (models.AdminStats, error)

	// AdminVerificationRequests lists verification requests, optionally
	// filtered by status. Admin role required.
	AdminVerificationRequests(ctx context.Context, status string) ([]models.VerificationRequest, error)

	// ReviewVerification approves or rejects a request. Admin role required.
	ReviewVerification(ctx context.Context, id string, approve bool, note string) (models.VerificationRequest, error)
}
