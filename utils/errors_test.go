package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestConfigValidationErrors(t *testing.T) {
	err := NewConfigValidationFieldRequiredError("labeler", "cell_size")
	test.That(t, err.Error(), test.ShouldEqual, `error validating "labeler": "cell_size" is required`)
}

func TestSizeMismatchError(t *testing.T) {
	err := NewSizeMismatchError("label array", 3, 4)
	test.That(t, err.Error(), test.ShouldEqual, "label array has 4 entries but the point set has 3")
}
