package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers transport failures and backend outages.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers rejected or insufficient credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers missing resources.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx backend reply. Detail carries the backend-supplied
// human-readable reason, when present, for inline display in forms.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Is maps status classes onto the package sentinels so callers can use
// errors.Is without caring about exact codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	}
	return false
}

// Detail extracts the backend-supplied reason from err, or returns the
// fallback when none is attached.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
