package utils

import (
	"github.com/pkg/errors"
)

// NewConfigValidationError returns a config validation error
// occurring at a given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError returns a config validation
// error for a field missing at a given path.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}

// NewSizeMismatchError is used when two containers that must describe the same point set
// disagree on their length. It signals a programmer error, not a recoverable condition.
func NewSizeMismatchError(what string, expected, actual int) error {
	return errors.Errorf("%s has %d entries but the point set has %d", what, actual, expected)
}
