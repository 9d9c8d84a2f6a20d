// Package models holds the client-side views of Flicksy API resources.
// Field names and JSON tags follow the backend wire format; the client
// never computes or mutates the counters, it only renders them.
package models

import "time"

// Roles known to the client. The backend owns the authorization rules;
// the client only uses the role to decide which views to offer.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the denormalized snapshot of an account as returned by the
// backend. It doubles as the "current user" identity attached to an
// authenticated session.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	Role           string    `json:"role"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	PostsCount     int       `json:"posts_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAdmin reports whether the account may use the admin dashboard.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
