package validation

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Custom validator instance
	validate = validator.New()
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Register custom validators
func init() {
	validate.RegisterValidation("coinname", validateCoinName)
	validate.RegisterValidation("marketcap", validateMarketCap)
	validate.RegisterValidation("percent", validatePercent)
	validate.RegisterValidation("timestamp", validateTimestamp)
}

// validateCoinName validates a scraped display name: non-empty, printable,
// and short enough to be a real listing entry rather than a selector mishit.
func validateCoinName(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if name == "" || len(name) > 100 {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// validateMarketCap validates a capitalization is positive and finite
func validateMarketCap(fl validator.FieldLevel) bool {
	mc, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return mc > 0 && !math.IsInf(mc, 0) && !math.IsNaN(mc)
}

// validatePercent validates a market share lies in [0, 100]
func validatePercent(fl validator.FieldLevel) bool {
	pct, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return pct >= 0 && pct <= 100 && !math.IsNaN(pct)
}

// validateTimestamp validates timestamp is recent and reasonable
func validateTimestamp(fl validator.FieldLevel) bool {
	timestamp, ok := fl.Field().Interface().(int64)
	if !ok {
		return false
	}

	t := time.UnixMilli(timestamp)
	now := time.Now()

	// Capture time should be within the last 24 hours and not in the future
	return t.After(now.Add(-24*time.Hour)) && !t.After(now.Add(time.Minute))
}

// ValidateStruct validates a struct using tags
func ValidateStruct(s interface{}) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		value := err.Value()

		message := getErrorMessage(field, tag, value)
		errors = append(errors, ValidationError{
			Field:   field,
			Message: message,
			Value:   value,
		})
	}

	return errors
}

// getErrorMessage returns a user-friendly error message
func getErrorMessage(field, tag string, value interface{}) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "coinname":
		return fmt.Sprintf("%s must be a non-empty printable name of at most 100 characters", field)
	case "marketcap":
		return fmt.Sprintf("%s must be a positive finite capitalization", field)
	case "percent":
		return fmt.Sprintf("%s must be a percentage between 0 and 100", field)
	case "timestamp":
		return fmt.Sprintf("%s must be a recent timestamp within the last 24 hours", field)
	case "min":
		return fmt.Sprintf("%s must be at least %v", field, value)
	case "max":
		return fmt.Sprintf("%s must be at most %v", field, value)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, tag)
	}
}

// SanitizeString trims surrounding whitespace and collapses inner runs of
// whitespace to single spaces.
func SanitizeString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeShare clamps a market share into [0, 100]
func SanitizeShare(pct float64) float64 {
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// SanitizeTimestamp clamps future timestamps back to now
func SanitizeTimestamp(ms int64) int64 {
	now := time.Now().UnixMilli()
	if ms <= 0 || ms > now {
		return now
	}
	return ms
}
