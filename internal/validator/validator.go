package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrOneOf          = "must be one of: %s"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	default:
		return ErrDefaultInvalid
	}
}
