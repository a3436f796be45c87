package response

import (
	"errors"
	"net/http"

	"github.com/andeanwork/asistencia-backend-go/internal/domain/employee"
	"github.com/andeanwork/asistencia-backend-go/internal/domain/worktime"
	"github.com/andeanwork/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, worktime.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
