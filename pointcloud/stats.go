package pointcloud

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the defined points of a position source.
type Summary struct {
	Points  int
	Defined int
	Meta    MetaData
	Mean    r3.Vector
	StdDev  r3.Vector
}

// Summarize computes per-axis mean and standard deviation over the defined points of src.
func Summarize(src PositionSource) Summary {
	s := Summary{Points: src.Len(), Meta: NewMetaData()}
	xs := make([]float64, 0, src.Len())
	ys := make([]float64, 0, src.Len())
	zs := make([]float64, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		p, ok := src.Position(i)
		if !ok {
			continue
		}
		s.Meta.Merge(p)
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		zs = append(zs, p.Z)
	}
	s.Defined = len(xs)
	if s.Defined == 0 {
		return s
	}
	s.Mean.X, s.StdDev.X = stat.PopMeanStdDev(xs, nil)
	s.Mean.Y, s.StdDev.Y = stat.PopMeanStdDev(ys, nil)
	s.Mean.Z, s.StdDev.Z = stat.PopMeanStdDev(zs, nil)
	return s
}
