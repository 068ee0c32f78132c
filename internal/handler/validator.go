package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("activity_source", validateActivitySource)
	_ = v.RegisterValidation("bet_type", validateBetType)
	_ = v.RegisterValidation("effect_type", validateEffectType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "activity_source":
			errs[field] = "Must be chat or voice"
		case "bet_type":
			errs[field] = "Must be red, black, odd or even"
		case "effect_type":
			errs[field] = "Must be spins, xp, currency or role_<category>"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateActivitySource(fl validator.FieldLevel) bool {
	return domain.ActivitySource(strings.ToLower(fl.Field().String())).IsValid()
}

func validateBetType(fl validator.FieldLevel) bool {
	return domain.RouletteBet(strings.ToLower(fl.Field().String())).IsValid()
}

func validateEffectType(fl validator.FieldLevel) bool {
	t := domain.EffectType(fl.Field().String())
	return t.IsPlain() || t.IsRole()
}
