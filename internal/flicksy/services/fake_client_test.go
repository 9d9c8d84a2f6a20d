package services

import (
	"context"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// fakeClient implements api.Client for service unit tests. Each call
// records its arguments and returns the canned result.
type fakeClient struct {
	PingErr error

	RegisterRet models.AuthResult
	RegisterErr error
	LastRegister models.RegisterRequest

	LoginRet models.AuthResult
	LoginErr error
	LastLoginUser, LastLoginPass string

	MeRet models.User
	MeErr error

	ProfileRet models.User
	ProfileErr error
	LastProfileUsername string

	FeedRet []models.Post
	FeedErr error
	LastFeedLimit, LastFeedSkip int

	CreatePostRet models.Post
	CreatePostErr error
	LastPostContent string

	ToggleLikeRet bool
	ToggleLikeErr error
	LastLikePostID string

	CommentsRet []models.Comment
	CommentsErr error
	LastCommentsPostID string
	LastCommentsLimit int

	CreateCommentRet models.Comment
	CreateCommentErr error
	LastCommentPostID, LastCommentContent string

	SearchRet models.SearchResults
	SearchErr error
	LastSearchQuery string
	LastSearchLimit int

	TrendingRet []models.TrendingTopic
	TrendingErr error
	LastTrendingLimit int

	RequestVerificationRet models.VerificationRequest
	RequestVerificationErr error
	LastVerificationReason string

	MyVerificationRet models.VerificationRequest
	MyVerificationErr error

	AdminStatsRet models.AdminStats
	AdminStatsErr error

	AdminRequestsRet []models.VerificationRequest
	AdminRequestsErr error
	LastAdminStatus string

	ReviewRet models.VerificationRequest
	ReviewErr error
	LastReviewID string
	LastReviewApprove bool
	LastReviewNote string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (models.AuthResult, error) {
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (models.User, error) { return f.MeRet, f.MeErr }

func (f *fakeClient) Profile(ctx context.Context, username string) (models.User, error) {
	f.LastProfileUsername = username
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) Feed(ctx context.Context, limit, skip int) ([]models.Post, error) {
	f.LastFeedLimit, f.LastFeedSkip = limit, skip
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) CreatePost(ctx context.Context, content string) (models.Post, error) {
	f.LastPostContent = content
	return f.CreatePostRet, f.CreatePostErr
}

func (f *fakeClient) ToggleLike(ctx context.Context, postID string) (bool, error) {
	f.LastLikePostID = postID
	return f.ToggleLikeRet, f.ToggleLikeErr
}

func (f *fakeClient) Comments(ctx context.Context, postID string, limit, skip int) ([]models.Comment, error) {
	f.LastCommentsPostID, f.LastCommentsLimit = postID, limit
	return f.CommentsRet, f.CommentsErr
}

func (f *fakeClient) CreateComment(ctx context.Context, postID, content string) (models.Comment, error) {
	f.LastCommentPostID, f.LastCommentContent = postID, content
	return f.CreateCommentRet, f.CreateCommentErr
}

func (f *fakeClient) Search(ctx context.Context, query string, limit int) (models.SearchResults, error) {
	f.LastSearchQuery, f.LastSearchLimit = query, limit
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) Trending(ctx context.Context, limit int) ([]models.TrendingTopic, error) {
	f.LastTrendingLimit = limit
	return f.TrendingRet, f.TrendingErr
}

func (f *fakeClient) RequestVerification(ctx context.Context, reason string) (models.VerificationRequest, error) {
	f.LastVerificationReason = reason
	return f.RequestVerificationRet, f.RequestVerificationErr
}

func (f *fakeClient) MyVerification(ctx context.Context) (models.VerificationRequest, error) {
	return f.MyVerificationRet, f.MyVerificationErr
}

func (f *fakeClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	return f.AdminStatsRet, f.AdminStatsErr
}

func (f *fakeClient) AdminVerificationRequests(ctx context.Context, status string) ([]models.VerificationRequest, error) {
	f.LastAdminStatus = status
	return f.AdminRequestsRet, f.AdminRequestsErr
}

func (f *fakeClient) ReviewVerification(ctx context.Context, id string, approve bool, note string) (models.VerificationRequest, error) {
	f.LastReviewID, f.LastReviewApprove, f.LastReviewNote = id, approve, note
	return f.ReviewRet, f.ReviewErr
}
