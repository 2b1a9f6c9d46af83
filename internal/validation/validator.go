package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cryptofolio/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	tickerPattern        = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,20}$`)
	apiCredentialPattern = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("provider", validateProvider)
	_ = v.RegisterValidation("ticker", validateTicker)
	_ = v.RegisterValidation("api_credential", validateAPICredential)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validation errors into "field: reason" messages.
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return messages
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " characters or items"
	case "max":
		return "must have at most " + fe.Param() + " characters or items"
	case "provider":
		return "must be one of coinbase, gemini, ledger"
	case "ticker":
		return "must be a currency ticker"
	case "api_credential":
		return "contains invalid characters"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// Custom validation functions

// validateProvider accepts the supported provider names, case-insensitively
func validateProvider(fl validator.FieldLevel) bool {
	_, err := models.ParseProvider(fl.Field().String())
	return err == nil
}

// validateTicker accepts short alphanumeric symbols such as BTC, USDC or BRK.B
func validateTicker(fl validator.FieldLevel) bool {
	return tickerPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateAPICredential rejects whitespace and characters no exchange issues in keys
func validateAPICredential(fl validator.FieldLevel) bool {
	return apiCredentialPattern.MatchString(fl.Field().String())
}
