// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers chain-specific ones:
//
//	blockhash  a 0x-prefixed, 32-byte hex hash (block or transaction hash)
//	hexqty     a 0x-prefixed hex quantity such as "0x1b4"
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Hash': value '0x' does not meet the requirements for the 'blockhash' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var (
	hashPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	quantityPattern = regexp.MustCompile(`^0x(0|[1-9a-fA-F][0-9a-fA-F]*)$`)
)

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	_ = validator.RegisterValidation("blockhash", func(fl gvalidator.FieldLevel) bool {
		return hashPattern.MatchString(fl.Field().String())
	})
	_ = validator.RegisterValidation("hexqty", func(fl gvalidator.FieldLevel) bool {
		return quantityPattern.MatchString(fl.Field().String())
	})
}

// formatError transforms a raw validator error into a human-readable multi-error chain
// rooted at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// IsBlockHash reports whether s is a well-formed 0x-prefixed 32-byte hash.
func IsBlockHash(s string) bool {
	return hashPattern.MatchString(s)
}
