// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// Tier validates that a string names a known compliance tier
var Tier = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := detectionDomain.ParseTier(s)
		return err == nil
	},
	validation.NewError("validation_tier", "must be one of: standard, enhanced"),
)

// Filename validates that a string is a bare file name without path separators
var Filename = validation.NewStringRuleWithError(
	func(s string) bool {
		return !strings.ContainsAny(s, "/\\")
	},
	validation.NewError("validation_filename", "must not contain path separators"),
)
