package contract

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/rutero/internal/domain"
)

// ErrorResponse is the wire form of a failed operation.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewErrorResponse maps planner errors onto their kind and status. Any other
// error is an internal failure and its text is not exposed.
func NewErrorResponse(err error) ErrorResponse {
	var pe *domain.PlannerError
	if errors.As(err, &pe) {
		return ErrorResponse{
			Kind:    string(pe.Kind),
			Field:   pe.Field,
			Message: pe.Message,
			Status:  pe.HTTPStatus(),
		}
	}
	return ErrorResponse{
		Kind:    "INTERNAL",
		Message: "internal error",
		Status:  http.StatusInternalServerError,
	}
}
