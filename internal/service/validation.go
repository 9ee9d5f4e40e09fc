package service

import (
	"errors"
	"strings"
	"unicode"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/go-playground/validator/v10"
)

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks struct tags and reports the first failing field as a
// VALIDATION error.
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid("request", "%v", err)
	}
	fe := verrs[0]
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.Invalid(field, "is required")
	case "max":
		return domain.Invalid(field, "must be at most %s characters", fe.Param())
	case "gte":
		return domain.Invalid(field, "must be >= %s", fe.Param())
	case "lte":
		return domain.Invalid(field, "must be <= %s", fe.Param())
	default:
		return domain.Invalid(field, "failed %q check", fe.Tag())
	}
}

// snakeCase turns VendorCode into vendor_code.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
