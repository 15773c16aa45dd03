package pointcloud

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"go.viam.com/test"
)

func TestVectorsPosition(t *testing.T) {
	vs := Vectors{NewVector(1, 2, 3), Undefined(), NewVector(math.Inf(1), 0, 0)}
	p, ok := vs.Position(0)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, p, test.ShouldResemble, NewVector(1, 2, 3))
	_, ok = vs.Position(1)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = vs.Position(2)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = vs.Position(3)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestComputeMetaData(t *testing.T) {
	meta := ComputeMetaData(Vectors{NewVector(-1, 2, 0), Undefined(), NewVector(3, -4, 0.5)})
	test.That(t, meta.Defined, test.ShouldEqual, 2)
	test.That(t, meta.Min(), test.ShouldResemble, NewVector(-1, -4, 0))
	test.That(t, meta.Max(), test.ShouldResemble, NewVector(3, 2, 0.5))

	empty := ComputeMetaData(Vectors{})
	test.That(t, empty.Empty(), test.ShouldBeTrue)
}

func TestReadXYZJSON(t *testing.T) {
	in := `[[1, 2, 3], [4, 5], null, [7, null, 9], [0.5, -1, 2]]`
	vs, err := ReadXYZJSON(strings.NewReader(in), false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vs, test.ShouldHaveLength, 5)
	test.That(t, vs[0], test.ShouldResemble, NewVector(1, 2, 3))
	for _, i := range []int{1, 2, 3} {
		_, ok := vs.Position(i)
		test.That(t, ok, test.ShouldBeFalse)
	}

	swapped, err := ReadXYZJSON(strings.NewReader(in), true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, swapped[4], test.ShouldResemble, NewVector(0.5, 2, -1))

	_, err = ReadXYZJSON(strings.NewReader(`{"points": []}`), false)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "error decoding xyz rows")
}

func TestWriteXYZJSON(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteXYZJSON(&buf, Vectors{NewVector(1, 2, 3), Undefined()}), test.ShouldBeNil)
	test.That(t, strings.TrimSpace(buf.String()), test.ShouldEqual, `[[1,2,3],null]`)

	back, err := ReadXYZJSON(&buf, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back, test.ShouldHaveLength, 2)
	_, ok := back.Position(1)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSummarize(t *testing.T) {
	s := Summarize(Vectors{NewVector(0, 0, 0), NewVector(2, 4, -2), Undefined()})
	test.That(t, s.Points, test.ShouldEqual, 3)
	test.That(t, s.Defined, test.ShouldEqual, 2)
	test.That(t, s.Mean, test.ShouldResemble, NewVector(1, 2, -1))
	test.That(t, s.StdDev, test.ShouldResemble, NewVector(1, 2, 1))

	empty := Summarize(Vectors{Undefined()})
	test.That(t, empty.Defined, test.ShouldEqual, 0)
	test.That(t, empty.Meta.Empty(), test.ShouldBeTrue)
}
