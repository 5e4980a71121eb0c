package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Failures surface as a
// domain.ValidationError for the first violated field only, so the
// response reports one field at a time and no write is attempted.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fieldError(ve[0])
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a per-field message.
func fieldError(fe validator.FieldError) *domain.ValidationError {
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return &domain.ValidationError{Field: field, Message: field + " is required"}
	case "email":
		return &domain.ValidationError{Field: field, Message: field + " must be a valid email"}
	case "min":
		return &domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be at least %s characters", field, fe.Param())}
	case "max":
		return &domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
	case "oneof":
		return &domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))}
	case "datetime":
		return &domain.ValidationError{Field: field, Message: field + " must be a valid RFC 3339 timestamp"}
	default:
		return &domain.ValidationError{Field: field, Message: fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())}
	}
}

// snakeCase converts a struct field name like "DueDate" to "due_date" so
// error messages match the JSON field names.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
