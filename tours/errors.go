package tours

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ValidationError marks malformed input: bad time ranges, non-positive
// amounts, malformed card fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError marks role failures: wrong user type, not a participant,
// offering out of turn.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func Authorizationf(format string, args ...interface{}) error {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing request, place or user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// InvalidStateError marks an operation against a terminal or ineligible
// state. Clients should re-fetch the request before retrying.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func InvalidStatef(format string, args ...interface{}) error {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an engine error to its response status code. Unknown
// errors map to 500 so persistence failures surface as server errors.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		authz      *AuthorizationError
		notFound   *NotFoundError
		state      *InvalidStateError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	case errors.As(err, &authz):
		return fiber.StatusForbidden
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &state):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
