package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation makes binding errors name fields by their JSON key.
// It is safe to call more than once.
func RegisterValidation() {
	registerOnce.Do(func() {
		validate, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// FormatBindingError renders a request binding error as a short message
func FormatBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, formatValidationError(fieldErr))
		}
		return strings.Join(messages, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
	}

	return err.Error()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
