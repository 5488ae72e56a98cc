package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// nameForm is the single-field registration form.
type nameForm struct {
	Name string `form:"name" validate:"required,notblank"`
}

// formValidator wraps go-playground/validator so Echo can call
// c.Validate(form).
type formValidator struct {
	v *validator.Validate
}

// NewFormValidator returns a validator ready to be assigned to
// echo.Echo.Validator. It registers a notblank rule so whitespace-only
// submissions are rejected like empty ones.
func NewFormValidator() *formValidator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &formValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (fv *formValidator) Validate(i any) error {
	if err := fv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return errors.New(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the inline message shown
// next to the form field.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	default:
		return field + " is invalid"
	}
}
