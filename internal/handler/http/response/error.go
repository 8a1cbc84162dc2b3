package response

import (
	"errors"
	"net/http"

	"github.com/eventops/eventops-backend-go/internal/domain/auth"
	"github.com/eventops/eventops-backend-go/internal/domain/event"
	"github.com/eventops/eventops-backend-go/internal/domain/payroll"
	"github.com/eventops/eventops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrFinancialsNotFound):
		NotFound(w, "Event financials not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrVendorNotOnRoster):
		BadRequest(w, "Vendor is not on the event roster", nil)
	case errors.Is(err, payroll.ErrAdjustmentSaveFailed):
		InternalServerError(w, "Payment adjustment could not be saved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
