package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for use as echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator for echo's e.Validator hook.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
