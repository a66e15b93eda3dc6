package handlers

import (
	"errors"

	"platefeed/internal/services"
)

// isClientFault reports whether a service error belongs to the caller:
// validation failures and dangling references on create paths map to 400,
// everything else to 500.
func isClientFault(err error) bool {
	return errors.Is(err, services.ErrDuplicateUsername) ||
		errors.Is(err, services.ErrUserNotFound) ||
		errors.Is(err, services.ErrPostNotFound) ||
		errors.Is(err, services.ErrDuplicateLike) ||
		errors.Is(err, services.ErrEmptyMessage)
}
