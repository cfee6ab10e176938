package response

import (
	"errors"
	"net/http"

	"github.com/salescraft/outreach-backend/internal/entity"
)

// statusFor maps domain errors to HTTP status codes. Anything unmapped
// is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrMissingUserMessage),
		errors.Is(err, entity.ErrUnknownChannel),
		errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrMissingPayload),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter):
		return http.StatusBadRequest

	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrEmailNotVerified),
		errors.Is(err, entity.ErrSessionNotFound):
		return http.StatusUnauthorized

	case errors.Is(err, entity.ErrForbidden),
		errors.Is(err, entity.ErrDomainNotAllowed):
		return http.StatusForbidden

	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// DomainError writes the error envelope with the mapped status. Internal
// errors are masked so storage details never leak to clients. Upstream
// generation failures and the unconfigured-key state are the exceptions:
// their messages are what the caller acts on.
func DomainError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError && !passthrough(err) {
		message = "internal server error"
	}
	Error(w, status, message)
}

func passthrough(err error) bool {
	return errors.Is(err, entity.ErrAPIKeyNotSet) ||
		errors.Is(err, entity.ErrGenerationFailed)
}
