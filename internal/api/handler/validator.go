package handler

import (
	"github.com/userhub/user-management/internal/core/validation"
)

// echoValidator adapts the shared validator so Echo can call c.Validate(req).
// Failures surface as *domain.ValidationError and render as 400 with details.
type echoValidator struct {
	v *validation.Validator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator(v *validation.Validator) *echoValidator {
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
