package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation marks user-input failures. No state is mutated when a
// validation error is returned; the caller is expected to fix the input
// and retry.
var ErrValidation = errors.New("validation failed")

// ValidateParams checks every field of params and returns the first problem
// found, wrapped in ErrValidation.
func ValidateParams(params CreateParams) error {
	if params.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive value", ErrValidation)
	}

	if strings.TrimSpace(params.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrValidation)
	}

	if !params.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, params.Category)
	}

	if err := ValidateDate(params.Date); err != nil {
		return err
	}

	return nil
}

// ValidateDate requires a non-empty, parseable YYYY-MM-DD date.
func ValidateDate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: date must be set", ErrValidation)
	}

	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("%w: date %q is not a valid YYYY-MM-DD date", ErrValidation, raw)
	}

	return nil
}
