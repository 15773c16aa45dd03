package selection

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/pclabel/pointcloud"
)

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeDraw, ModeErase, ModePolygonHighlight} {
		parsed, err := ParseMode(m.String())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, m)
	}
	parsed, err := ParseMode("ERASE")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldEqual, ModeErase)

	_, err = ParseMode("spray")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "spray")
}

func TestTargetLabel(t *testing.T) {
	label, ok := ModeDraw.TargetLabel()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, label, test.ShouldEqual, pointcloud.Classified)

	label, ok = ModeErase.TargetLabel()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, label, test.ShouldEqual, pointcloud.Unclassified)

	_, ok = ModePolygonHighlight.TargetLabel()
	test.That(t, ok, test.ShouldBeFalse)
}

func TestBrush(t *testing.T) {
	b := NewDefaultBrush()
	test.That(t, b.Radius(), test.ShouldEqual, DefaultRadius)

	test.That(t, b.Adjust(50), test.ShouldAlmostEqual, 0.1)
	test.That(t, b.Adjust(-100), test.ShouldAlmostEqual, 0.3)
	test.That(t, b.Adjust(1e6), test.ShouldEqual, DefaultMinRadius)
	test.That(t, b.Adjust(-1e9), test.ShouldEqual, DefaultMaxRadius)

	swapped := NewBrush(100, 5, 1)
	test.That(t, swapped.Radius(), test.ShouldEqual, 5.0)
	test.That(t, swapped.SetRadius(0), test.ShouldEqual, 1.0)
}
