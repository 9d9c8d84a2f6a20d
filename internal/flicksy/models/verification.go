package models

import "time"

// Verification request statuses as reported by the backend.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// VerificationRequest is a user's application for the verified badge.
type VerificationRequest struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Username   string     `json:"username"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

// AdminStats is the summary block of the admin dashboard.
type AdminStats struct {
	Users                int `json:"users"`
	Posts                int `json:"posts"`
	Comments             int `json:"comments"`
	PendingVerifications int `json:"pending_verifications"`
}
