// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "todo/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for request DTO validation.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator used by the HTTP server.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and maps failures onto the domain
// validation error so the error middleware renders a 400 envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
