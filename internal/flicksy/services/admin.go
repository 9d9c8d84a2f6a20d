package services

import (
	"context"
	"fmt"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// AdminService backs the admin dashboard. Authorization is the backend's
// decision; a non-admin caller gets api.ErrUnauthorized back.
type AdminService struct {
	client api.Client
}

// NewAdminService binds the service to the API client.
func NewAdminService(client api.Client) *AdminService {
	return &AdminService{client: client}
}

// Stats returns the dashboard summary block.
func (s *AdminService) Stats(ctx context.Context) (models.AdminStats, error) {
	return s.client.AdminStats(ctx)
}

// VerificationRequests lists requests, optionally filtered by status.
func (s *AdminService) VerificationRequests(ctx context.Context, status string) ([]models.VerificationRequest, error) {
	switch status {
	case "", models.VerificationPending, models.VerificationApproved, models.VerificationRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.client.AdminVerificationRequests(ctx, status)
}

// Review approves or rejects a pending request.
func (s *AdminService) Review(ctx context.Context, id string, approve bool, note string) (models.VerificationRequest, error) {
	if id == "" {
		return models.VerificationRequest{}, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	return s.client.ReviewVerification(ctx, id, approve, note)
}
