// Package apierror maps domain errors onto HTTP status codes so every
// handler reports validation, ownership and conflict failures the same way.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
)

// FromService wraps a service error in a huma error with the matching
// status code. Unrecognized errors become a 500 with the given message.
func FromService(err error, message string) error {
	switch {
	case errors.Is(err, billing.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, billing.ErrConflict):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, billing.ErrInvalidInstallments),
		errors.Is(err, billing.ErrInvalidArgument):
		return huma.NewError(http.StatusUnprocessableEntity, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
