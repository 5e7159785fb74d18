// Package validation holds the request schemas and the single validator that
// checks them. A schema is a struct whose `validate` tags form its rule
// table; Normalize fills defaults and trims before the rules run.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error lists every violation found in one payload.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NewError builds an Error from one or more messages.
func NewError(violations ...string) *Error {
	return &Error{Violations: violations}
}

// Normalizer is implemented by schemas that trim, lowercase or fill defaults
// before validation.
type Normalizer interface {
	Normalize()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// Struct normalizes s when it implements Normalizer, then checks every rule
// and reports all violations at once.
func Struct(s any) error {
	if n, ok := s.(Normalizer); ok {
		n.Normalize()
	}
	return check(s)
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, message(fe))
	}
	return &Error{Violations: violations}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s is not a valid id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if isText {
			if fe.Param() == "1" {
				return fmt.Sprintf("%s cannot be empty", field)
			}
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
