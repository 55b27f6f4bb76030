package rest

import (
	"errors"
	"net/http"

	"kantinkampus/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// errStatus maps the domain's sentinel errors to HTTP statuses. Unknown
// errors become a 500 with a generic message at the call site.
func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateStand):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMenuUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errBody(err error) ResponseError {
	if errStatus(err) == http.StatusInternalServerError {
		return ResponseError{Message: "something went wrong, please try again"}
	}

	return ResponseError{Message: err.Error()}
}
