package cli

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/pclabel/pointcloud"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector(" 1, -2.5,3 ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v, test.ShouldResemble, r3.Vector{X: 1, Y: -2.5, Z: 3})

	_, err = parseVector("1,2")
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parseVector("1,2,z")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseVectors(t *testing.T) {
	vs, err := parseVectors("0,0,-1; 5,5,-1;")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vs, test.ShouldResemble, []r3.Vector{{Z: -1}, {X: 5, Y: 5, Z: -1}})

	_, err = parseVectors(";")
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parseVectors("0,0,-1;5,5")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParsePolygon(t *testing.T) {
	vs, err := parsePolygon("0,0;1,0;1,1;", 2.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vs, test.ShouldResemble, []r3.Vector{{Y: 2.5}, {X: 1, Y: 2.5}, {X: 1, Y: 2.5, Z: 1}})

	_, err = parsePolygon("0,0;1,0", 0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parsePolygon("0,0,0;1,0;1,1", 0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseLabel(t *testing.T) {
	for in, want := range map[string]pointcloud.Label{
		"classified": pointcloud.Classified, "1": pointcloud.Classified,
		"Unclassified": pointcloud.Unclassified, "0": pointcloud.Unclassified,
	} {
		got, err := parseLabel(in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}
	_, err := parseLabel("2")
	test.That(t, err, test.ShouldNotBeNil)
}
