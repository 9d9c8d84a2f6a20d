package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

const maxVerificationReason = 500

// VerificationService backs the "request verification" form.
type VerificationService struct {
	client api.Client
}

// NewVerificationService binds the service to the API client.
func NewVerificationService(client api.Client) *VerificationService {
	return &VerificationService{client: client}
}

// Request submits a verification application.
func (s *VerificationService) Request(ctx context.Context, reason string) (models.VerificationRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.VerificationRequest{}, fmt.Errorf("%w: a reason is required", ErrValidation)
	}
	if len(reason) > maxVerificationReason {
		return models.VerificationRequest{}, fmt.Errorf("%w: reason must be at most %d characters", ErrValidation, maxVerificationReason)
	}
	return s.client.RequestVerification(ctx, reason)
}

// Status returns the caller's latest verification request.
func (s *VerificationService) Status(ctx context.Context) (models.VerificationRequest, error) {
	return s.client.MyVerification(ctx)
}
