package response

import (
	"errors"
	"net/http"

	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/attendance"
	"github.com/cantiere-paghe/payslip-backend-go/internal/domain/payslip"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/validator"
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
	// Attendance source errors
	case errors.Is(err, attendance.ErrMissingHeader):
		BadRequest(w, "Attendance file has no header row", nil)
	case errors.Is(err, attendance.ErrEmptySource):
		BadRequest(w, "Attendance file has no data rows", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrInvalidPeriod):
		BadRequest(w, "Invalid payslip period", nil)
	case errors.Is(err, payslip.ErrNoRecordsInPeriod):
		NotFound(w, "No attendance records in the requested period")
	case errors.Is(err, payslip.ErrSlipRenderFailed),
		errors.Is(err, payslip.ErrArchiveBuildFailed):
		InternalServerError(w, "Payslip document generation failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
