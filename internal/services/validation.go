package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct validates s and converts the first failing field into a
// ValidationError. Fields are checked in declaration order.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Msg: err.Error()}
	}
	return &ValidationError{Msg: describeFieldError(fieldErrs[0])}
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s not provided", capitalize(field))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", capitalize(field), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", capitalize(field), fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", capitalize(field), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", capitalize(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", capitalize(field), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", capitalize(field))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", capitalize(field), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", capitalize(field))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
