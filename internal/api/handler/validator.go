package handler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

// requestValidator adapts go-playground/validator to the echo.Validator
// interface. Failures are reported as domain.ErrInvalidInput so the central
// error handler renders them as a 400 response.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator builds the validator assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var b strings.Builder
	for n, fe := range ve {
		if n > 0 {
			b.WriteString("; ")
		}
		b.WriteString(describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, b.String())
}

func describe(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}
