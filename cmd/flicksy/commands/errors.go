package commands

import (
	"errors"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/services"
)

// loginFailureReason picks the inline message for a failed form
// submission: the local validation message, the backend-supplied detail,
// or a generic fallback.
func loginFailureReason(err error) string {
	if errors.Is(err, services.ErrValidation) {
		return err.Error()
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "the server is unreachable, try again later"
	}
	return api.Detail(err, "something went wrong, try again")
}
