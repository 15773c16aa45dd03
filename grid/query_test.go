package grid

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.viam.com/test"

	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/spatialmath"
)

func makeRay(origin, direction r3.Vector) spatialmath.Ray {
	return spatialmath.NewRay(origin, direction)
}

func TestNearLineScenario(t *testing.T) {
	vs := pointcloud.Vectors{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0.3}, {X: 5, Y: 5, Z: 5}}
	idx := New(0.4, vs, logging.NewTestLogger(t))

	got := idx.NearLine(makeRay(r3.Vector{Z: -1}, r3.Vector{Z: 1}), 10, 0.1)
	test.That(t, got, test.ShouldResemble, []int{0, 1})
}

func TestNearLineVeryLongRay(t *testing.T) {
	vs := pointcloud.Vectors{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0.3}, {X: 5, Y: 5, Z: 5}}
	idx := New(0.4, vs, logging.NewTestLogger(t))

	for _, length := range []float64{10, 1e18, 1e20, math.MaxFloat64} {
		got := idx.NearLine(makeRay(r3.Vector{Z: -1}, r3.Vector{Z: 1}), length, 0.1)
		test.That(t, got, test.ShouldResemble, []int{0, 1})
	}
	got := idx.NearLine(makeRay(r3.Vector{Z: 1e20}, r3.Vector{Z: -1}), 2e20, 0.1)
	test.That(t, got, test.ShouldResemble, []int{0, 1})
}

func TestNearLineUsesInfiniteLine(t *testing.T) {
	// 0.3 behind the origin, still inside the grown candidate box
	vs := pointcloud.Vectors{{Z: -1.3}, {Z: 0.5}, {X: 0.2, Z: 0.5}}
	idx := New(0.4, vs, logging.NewTestLogger(t))

	got := idx.NearLine(makeRay(r3.Vector{Z: -1}, r3.Vector{Z: 1}), 2, 0.1)
	test.That(t, got, test.ShouldResemble, []int{0, 1})
}

func TestNearLineMatchesBruteForce(t *testing.T) {
	vs := makeRandomPoints(2000, 7, 1)
	idx := New(0.25, vs, logging.NewTestLogger(t))
	ray := makeRay(r3.Vector{X: 0.1, Y: -0.2, Z: -5}, r3.Vector{Z: 1})
	const radius = 0.3

	var want []int
	for i, p := range vs {
		if spatialmath.DistToLine(ray.Origin, ray.Direction, p) <= radius {
			want = append(want, i)
		}
	}
	test.That(t, len(want), test.ShouldBeGreaterThan, 0)
	test.That(t, idx.NearLine(ray, 10, radius), test.ShouldResemble, want)
}

func TestNearLineDegenerateDirection(t *testing.T) {
	vs := pointcloud.Vectors{{}, {X: 0.05}, {X: 0.5}}
	idx := New(0.4, vs, logging.NewTestLogger(t))
	got := idx.NearLine(spatialmath.Ray{Origin: r3.Vector{}}, 40, 0.1)
	test.That(t, got, test.ShouldResemble, []int{0, 1})

	nan := spatialmath.Ray{Origin: r3.Vector{X: math.NaN()}, Direction: r3.Vector{Z: 1}}
	test.That(t, idx.NearLine(nan, 40, 0.1), test.ShouldBeEmpty)
}

func TestNearQuadSinglePoint(t *testing.T) {
	vs := makeRandomPoints(3000, 3, 2)
	idx := New(0.4, vs, logging.NewTestLogger(t))
	center := r3.Vector{X: 0.3, Y: -0.1, Z: 0.2}

	// the large distance spans more coordinates than there are cells, exercising the map walk
	for _, maxDist := range []float64{0.2, 0.75, 10} {
		var want []int
		for i, p := range vs {
			if p.Sub(center).Norm2() < maxDist*maxDist {
				want = append(want, i)
			}
		}
		got := idx.NearQuad(center, center, center, center, maxDist)
		test.That(t, got, test.ShouldResemble, want)
	}
}

func TestNearQuadSweep(t *testing.T) {
	// two vertical rays one unit apart along X; the sweep covers the strip between them
	vs := pointcloud.Vectors{
		{X: 0.5, Y: 1, Z: 0},   // between the rays
		{X: 0.5, Y: 1, Z: 0.3}, // too far off the swept plane
		{X: 1.05, Y: 2, Z: 0},  // just past the current ray
		{X: -0.5, Y: 1, Z: 0},  // behind the previous ray
	}
	idx := New(0.4, vs, logging.NewTestLogger(t))
	cur := makeRay(r3.Vector{X: 1}, r3.Vector{Y: 1})
	prev := makeRay(r3.Vector{X: 0}, r3.Vector{Y: 1})

	got := idx.NearQuad(cur.Origin, cur.At(40), prev.Origin, prev.At(40), 0.2)
	test.That(t, got, test.ShouldResemble, []int{0, 2})
}

func TestInPolygon(t *testing.T) {
	vs := pointcloud.Vectors{
		{X: 0.5, Y: -30, Z: 0.5},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: 0.5, Y: 42, Z: 0.5},
		{X: 2, Y: 0, Z: 2},
		{X: 2, Y: 42, Z: 2},
		pointcloud.Undefined(),
		{X: 0.9, Y: 7, Z: 0.1},
	}
	idx := New(0.4, vs, logging.NewTestLogger(t))
	square := []r3.Vector{{X: 0, Y: 99, Z: 0}, {X: 1, Y: 99, Z: 0}, {X: 1, Y: -99, Z: 1}, {X: 0, Y: 3, Z: 1}}

	test.That(t, idx.InPolygon(square), test.ShouldResemble, []int{0, 1, 2, 6})
	test.That(t, idx.InPolygon(square[:2]), test.ShouldBeEmpty)
	test.That(t, idx.InPolygon(nil), test.ShouldBeEmpty)

	offset := []r3.Vector{{X: 1.5, Z: 1.5}, {X: 2.5, Z: 1.5}, {X: 2.5, Z: 2.5}, {X: 1.5, Z: 2.5}}
	test.That(t, idx.InPolygon(offset), test.ShouldResemble, []int{3, 4})
}

func TestQueryMetrics(t *testing.T) {
	idx := New(0.4, pointcloud.Vectors{{}, {Z: 0.3}}, logging.NewTestLogger(t))
	counter := gridQueries.With(prometheus.Labels{kindLabel: kindLine})
	before := testutil.ToFloat64(counter)
	idx.NearLine(makeRay(r3.Vector{Z: -1}, r3.Vector{Z: 1}), 10, 0.1)
	idx.NearLine(makeRay(r3.Vector{Z: -1}, r3.Vector{Z: 1}), 10, 0.1)
	test.That(t, testutil.ToFloat64(counter), test.ShouldEqual, before+2)
}
