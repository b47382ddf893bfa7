package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the `validate` tags declared on a request payload and
// reports the outcome in the same Result shape the field validators use.
func ValidateStruct(v any) Result {
	err := validate.Struct(v)
	if err == nil {
		return valid()
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// not a field-level failure (e.g. a non-struct argument)
		return invalid(err.Error())
	}

	out := Result{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s is too long (maximum is %s)", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s is too short (minimum is %s)", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
