package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

const defaultPageSize = 20

// FeedService backs the feed view, the post composer, the comment thread
// and the like button.
type FeedService struct {
	client api.Client
}

// NewFeedService binds the service to the API client.
func NewFeedService(client api.Client) *FeedService {
	return &FeedService{client: client}
}

// List fetches a feed page, newest first.
func (s *FeedService) List(ctx context.Context, limit, skip int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return s.client.Feed(ctx, limit, skip)
}

// Compose publishes a new post after the same length check the composer
// applies inline.
func (s *FeedService) Compose(ctx context.Context, content string) (models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Post{}, fmt.Errorf("%w: post content is required", ErrValidation)
	}
	if len(content) > models.MaxPostLength {
		return models.Post{}, fmt.Errorf("%w: post must be at most %d characters", ErrValidation, models.MaxPostLength)
	}
	return s.client.CreatePost(ctx, content)
}

// ToggleLike likes or unlikes a post and reports the resulting state.
func (s *FeedService) ToggleLike(ctx context.Context, postID string) (bool, error) {
	if postID == "" {
		return false, fmt.Errorf("%w: post id is required", ErrValidation)
	}
	return s.client.ToggleLike(ctx, postID)
}

// Comments fetches a post's comment thread, oldest first.
func (s *FeedService) Comments(ctx context.Context, postID string, limit, skip int) ([]models.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrValidation)
	}
	if limit <= 0 {
		limit = 50
	}
	return s.client.Comments(ctx, postID, limit, skip)
}

// Reply adds a comment to a post.
func (s *FeedService) Reply(ctx context.Context, postID, content string) (models.Comment, error) {
	if postID == "" {
		return models.Comment{}, fmt.Errorf("%w: post id is required", ErrValidation)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, fmt.Errorf("%w: comment content is required", ErrValidation)
	}
	if len(content) > models.MaxCommentLength {
		return models.Comment{}, fmt.Errorf("%w: comment must be at most %d characters", ErrValidation, models.MaxCommentLength)
	}
	return s.client.CreateComment(ctx, postID, content)
}
