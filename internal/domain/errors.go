package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the machine-readable class of a planner error.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindValidation ErrorKind = "VALIDATION"
	KindConflict   ErrorKind = "CONFLICT"
)

// PlannerError is a recoverable, caller-facing planner failure. Failures of
// the ERP or the override store are never converted into a PlannerError.
type PlannerError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *PlannerError) Error() string {
	if e.Field == "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind) + ": " + e.Field + ": " + e.Message
}

// HTTPStatus maps the kind onto the status code the HTTP layer should return.
func (e *PlannerError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func NotFound(field, format string, args ...any) *PlannerError {
	return &PlannerError{Kind: KindNotFound, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Invalid(field, format string, args ...any) *PlannerError {
	return &PlannerError{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Conflict(field, format string, args ...any) *PlannerError {
	return &PlannerError{Kind: KindConflict, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first PlannerError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var pe *PlannerError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
