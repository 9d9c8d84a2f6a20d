package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// DiscoveryService backs the search box and the trending panel.
type DiscoveryService struct {
	client api.Client
}

// NewDiscoveryService binds the service to the API client.
func NewDiscoveryService(client api.Client) *DiscoveryService {
	return &DiscoveryService{client: client}
}

// Search looks up users and posts matching the query.
func (s *DiscoveryService) Search(ctx context.Context, query string, limit int) (models.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchResults{}, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	if limit <= 0 {
		limit = 10
	}
	return s.client.Search(ctx, query, limit)
}

// Trending returns the current hashtag leaderboard.
func (s *DiscoveryService) Trending(ctx context.Context, limit int) ([]models.TrendingTopic, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.client.Trending(ctx, limit)
}

// Profile fetches a public profile by username.
func (s *DiscoveryService) Profile(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	return s.client.Profile(ctx, username)
}
