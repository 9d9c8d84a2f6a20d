package devserver

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// Store errors, mapped to HTTP statuses by the handlers.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ConflictError is an ErrConflict carrying the detail string the client
// should see.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type account struct {
	ID           string
	Username     string
	Email        string
	DisplayName  string
	Bio          string
	PasswordHash string
	IsVerified   bool
	Role         string
	CreatedAt    time.Time
}

type post struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

type comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

type verification struct {
	ID         string
	UserID     string
	Reason     string
	Status     string
	Note       string
	CreatedAt  time.Time
	ReviewedAt *time.Time
}

// Store keeps all backend state in memory behind one mutex. Good enough
// for a single-process dev backend; nothing survives a restart.
type Store struct {
	mu            sync.RWMutex
	users         map[string]*account // by id
	posts         map[string]*post
	comments      map[string][]*comment        // by post id, oldest first
	likes         map[string]map[string]bool   // post id -> user id
	verifications map[string]*verification     // by id
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*account),
		posts:         make(map[string]*post),
		comments:      make(map[string][]*comment),
		likes:         make(map[string]map[string]bool),
		verifications: make(map[string]*verification),
	}
}

func (s *Store) userView(a *account) models.User {
	postsCount := 0
	for _, p := range s.posts {
		if p.AuthorID == a.ID {
			postsCount++
		}
	}
	return models.User{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Bio:         a.Bio,
		IsVerified:  a.IsVerified,
		Role:        a.Role,
		PostsCount:  postsCount,
		CreatedAt:   a.CreatedAt,
	}
}

func (s *Store) postView(p *post, viewerID string) models.Post {
	author := s.users[p.AuthorID]
	likes := s.likes[p.ID]
	return models.Post{
		ID:                p.ID,
		Content:           p.Content,
		AuthorID:          p.AuthorID,
		AuthorUsername:    author.Username,
		AuthorDisplayName: author.DisplayName,
		AuthorIsVerified:  author.IsVerified,
		CreatedAt:         p.CreatedAt,
		LikesCount:        len(likes),
		CommentsCount:     len(s.comments[p.ID]),
		LikedByUser:       viewerID != "" && likes[viewerID],
	}
}

func (s *Store) commentView(c *comment) models.Comment {
	author := s.users[c.AuthorID]
	return models.Comment{
		ID:                c.ID,
		Content:           c.Content,
		PostID:            c.PostID,
		AuthorID:          c.AuthorID,
		AuthorUsername:    author.Username,
		AuthorDisplayName: author.DisplayName,
		AuthorIsVerified:  author.IsVerified,
		CreatedAt:         c.CreatedAt,
	}
}

func (s *Store) verificationView(v *verification) models.VerificationRequest {
	username := ""
	if u, ok := s.users[v.UserID]; ok {
		username = u.Username
	}
	return models.VerificationRequest{
		ID:         v.ID,
		UserID:     v.UserID,
		Username:   username,
		Reason:     v.Reason,
		Status:     v.Status,
		Note:       v.Note,
		CreatedAt:  v.CreatedAt,
		ReviewedAt: v.ReviewedAt,
	}
}

// CreateUser registers an account. Username and email must be unique.
func (s *Store) CreateUser(username, email, displayName, bio, passwordHash, role string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, &ConflictError{Detail: "Username already registered"}
		}
		if strings.EqualFold(u.Email, email) {
			return models.User{}, &ConflictError{Detail: "Email already registered"}
		}
	}
	a := &account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		DisplayName:  displayName,
		Bio:          bio,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[a.ID] = a
	return s.userView(a), nil
}

// Credentials returns the user id and password hash for a username.
func (s *Store) Credentials(username string) (id, hash string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u.ID, u.PasswordHash, nil
		}
	}
	return "", "", ErrNotFound
}

// UserByID returns the account snapshot for the id.
func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.userView(a), nil
}

// UserByUsername returns the public profile for a username.
func (s *Store) UserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			v := s.userView(u)
			v.Email = ""
			return v, nil
		}
	}
	return models.User{}, ErrNotFound
}

// CreatePost publishes a post for the author.
func (s *Store) CreatePost(authorID, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[authorID]; !ok {
		return models.Post{}, ErrNotFound
	}
	p := &post{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.posts[p.ID] = p
	return s.postView(p, authorID), nil
}

// ListPosts returns the feed, newest first, with LikedByUser computed for
// the viewer (empty viewerID means anonymous).
func (s *Store) ListPosts(limit, skip int, viewerID string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*post, 0, len(s.posts))
	for _, p := range s.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	all = page(all, limit, skip)
	out := make([]models.Post, 0, len(all))
	for _, p := range all {
		out = append(out, s.postView(p, viewerID))
	}
	return out
}

// ToggleLike flips the viewer's like on a post and reports the new state.
func (s *Store) ToggleLike(postID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return false, ErrNotFound
	}
	likes := s.likes[postID]
	if likes == nil {
		likes = make(map[string]bool)
		s.likes[postID] = likes
	}
	if likes[userID] {
		delete(likes, userID)
		return false, nil
	}
	likes[userID] = true
	return true, nil
}

// ListComments returns a post's comments, oldest first.
func (s *Store) ListComments(postID string, limit, skip int) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.posts[postID]; !ok {
		return nil, ErrNotFound
	}
	cs := page(s.comments[postID], limit, skip)
	out := make([]models.Comment, 0, len(cs))
	for _, c := range cs {
		out = append(out, s.commentView(c))
	}
	return out, nil
}

// CreateComment attaches a reply to a post.
func (s *Store) CreateComment(postID, authorID, content string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return models.Comment{}, ErrNotFound
	}
	c := &comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.comments[postID] = append(s.comments[postID], c)
	return s.commentView(c), nil
}

// Search matches users on username/display name and posts on content,
// case-insensitively.
func (s *Store) Search(query string, limit int, viewerID string) models.SearchResults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 20
	}
	q := strings.ToLower(query)
	res := models.SearchResults{Users: []models.User{}, Posts: []models.Post{}}
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q) {
			v := s.userView(u)
			v.Email = ""
			res.Users = append(res.Users, v)
			if len(res.Users) >= limit {
				break
			}
		}
	}
	matched := make([]*post, 0)
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Content), q) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	for _, p := range matched {
		res.Posts = append(res.Posts, s.postView(p, viewerID))
	}
	sort.Slice(res.Users, func(i, j int) bool { return res.Users[i].Username < res.Users[j].Username })
	return res
}

// CreateVerification files a badge request. At most one pending request
// per user.
func (s *Store) CreateVerification(userID, reason string) (models.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return models.VerificationRequest{}, ErrNotFound
	}
	for _, v := range s.verifications {
		if v.UserID == userID && v.Status == models.VerificationPending {
			return models.VerificationRequest{}, ErrConflict
		}
	}
	v := &verification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Reason:    reason,
		Status:    models.VerificationPending,
		CreatedAt: time.Now().UTC(),
	}
	s.verifications[v.ID] = v
	return s.verificationView(v), nil
}

// LatestVerification returns the user's most recent request.
func (s *Store) LatestVerification(userID string) (models.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *verification
	for _, v := range s.verifications {
		if v.UserID != userID {
			continue
		}
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			latest = v
		}
	}
	if latest == nil {
		return models.VerificationRequest{}, ErrNotFound
	}
	return s.verificationView(latest), nil
}

// ListVerifications returns requests, optionally filtered by status,
// oldest first.
func (s *Store) ListVerifications(status string) []models.VerificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.VerificationRequest, 0)
	for _, v := range s.verifications {
		if status != "" && v.Status != status {
			continue
		}
		out = append(out, s.verificationView(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ReviewVerification settles a pending request. Approval flips the
// user's verified flag.
func (s *Store) ReviewVerification(id string, approve bool, note string) (models.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.verifications[id]
	if !ok {
		return models.VerificationRequest{}, ErrNotFound
	}
	if v.Status != models.VerificationPending {
		return models.VerificationRequest{}, ErrConflict
	}
	now := time.Now().UTC()
	v.Note = note
	v.ReviewedAt = &now
	if approve {
		v.Status = models.VerificationApproved
		if u, ok := s.users[v.UserID]; ok {
			u.IsVerified = true
		}
	} else {
		v.Status = models.VerificationRejected
	}
	return s.verificationView(v), nil
}

// Stats returns the dashboard totals.
func (s *Store) Stats() models.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comments := 0
	for _, cs := range s.comments {
		comments += len(cs)
	}
	pending := 0
	for _, v := range s.verifications {
		if v.Status == models.VerificationPending {
			pending++
		}
	}
	return models.AdminStats{
		Users:                len(s.users),
		Posts:                len(s.posts),
		Comments:             comments,
		PendingVerifications: pending,
	}
}

func page[T any](items []T, limit, skip int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit <= 0 {
		limit = 20
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
