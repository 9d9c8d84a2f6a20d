package models

import "time"

// Limits enforced client-side before a request is issued. The backend
// enforces the same bounds; duplicating them here keeps bad input from
// ever leaving the process.
const (
	MaxPostLength    = 500
	MaxCommentLength = 280
)

// Post is a feed entry with its author denormalized by the backend.
// LikedByUser is computed per caller and only meaningful on responses
// to authenticated feed requests.
type Post struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	AuthorID          string    `json:"author_id"`
	AuthorUsername    string    `json:"author_username"`
	AuthorDisplayName string    `json:"author_display_name"`
	AuthorIsVerified  bool      `json:"author_is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	LikesCount        int       `json:"likes_count"`
	CommentsCount     int       `json:"comments_count"`
	RepostsCount      int       `json:"reposts_count"`
	LikedByUser       bool      `json:"liked_by_user"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	PostID            string    `json:"post_id"`
	AuthorID          string    `json:"author_id"`
	AuthorUsername    string    `json:"author_username"`
	AuthorDisplayName string    `json:"author_display_name"`
	AuthorIsVerified  bool      `json:"author_is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	LikesCount        int       `json:"likes_count"`
}
