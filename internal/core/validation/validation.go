// Package validation builds the go-playground validator shared by the HTTP layer and the
// services, and translates its failures into domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/userhub/user-management/internal/core/domain"
)

// Custom tags understood by the validator.
const (
	TagPersonName     = "personname"
	TagImageURL       = "imageurl"
	TagStrongPassword = "strongpassword"
	TagRole           = "role"
)

// Validator wraps a configured *validator.Validate. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the user-directory rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages match the request payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v, TagPersonName, func(fl validator.FieldLevel) bool {
		// Names are stored trimmed, so the bounds apply to the trimmed value.
		return domain.IsValidName(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, TagImageURL, func(fl validator.FieldLevel) bool {
		return domain.IsValidImageURL(fl.Field().String())
	})
	mustRegister(v, TagStrongPassword, func(fl validator.FieldLevel) bool {
		return domain.IsStrongPassword(fl.Field().String())
	})
	mustRegister(v, TagRole, func(fl validator.FieldLevel) bool {
		return domain.IsValidRole(fl.Field().String())
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns a *domain.ValidationError listing every failed field.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage converts a single FieldError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "email":
		return "Please provide a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", capitalize(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", capitalize(field), fe.Param())
	case TagPersonName:
		return "Name must be 3-20 characters and contain only alphabetic characters, spaces, or hyphens."
	case TagImageURL:
		return "Please provide a valid image URL (http/https and ends in jpg, png, etc)."
	case TagStrongPassword:
		return "Password must be at least 8 characters long and contain uppercase, lowercase, number, and special character."
	case TagRole:
		return "Role must be either 'user' or 'admin'."
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
