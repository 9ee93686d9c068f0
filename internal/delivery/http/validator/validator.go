// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "bhwconnect/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags on a bound request payload. Failures surface as
// a 400 through the error handler.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingField.WrapMessage(err.Error())
	}

	return nil
}
