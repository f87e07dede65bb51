// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground validator with the API's custom rules
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the custom rules registered
func New() *CustomValidator {
	v := validator.New()

	// notblank rejects values that are empty after trimming.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("bloodgroup", validateBloodGroup)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

var bloodGroups = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// validateBloodGroup accepts ABO/Rh groups, ignoring case and surrounding spaces.
func validateBloodGroup(fl validator.FieldLevel) bool {
	_, ok := bloodGroups[strings.ToUpper(strings.TrimSpace(fl.Field().String()))]

	return ok
}
