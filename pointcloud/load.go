package pointcloud

import (
	"io"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// ReadXYZJSON reads a JSON array of [x, y, z] rows, the shape the point server hands out. Rows
// that are too short or hold nulls become undefined points so that every later row keeps its
// index. When swapYZ is set each row is read as z-up and stored y-up.
func ReadXYZJSON(r io.Reader, swapYZ bool) (Vectors, error) {
	var rows [][]*float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "error decoding xyz rows")
	}

	out := make(Vectors, len(rows))
	for i, row := range rows {
		if len(row) < 3 || row[0] == nil || row[1] == nil || row[2] == nil {
			out[i] = Undefined()
			continue
		}
		v := r3.Vector{X: *row[0], Y: *row[1], Z: *row[2]}
		if swapYZ {
			v.Y, v.Z = v.Z, v.Y
		}
		out[i] = v
	}
	return out, nil
}

// WriteXYZJSON writes positions as a JSON array of [x, y, z] rows. Undefined points are
// written as null rows.
func WriteXYZJSON(w io.Writer, positions Vectors) error {
	rows := make([][]float64, len(positions))
	for i := range positions {
		if p, ok := positions.Position(i); ok {
			rows[i] = []float64{p.X, p.Y, p.Z}
		}
	}
	return errors.Wrap(json.NewEncoder(w).Encode(rows), "error encoding xyz rows")
}
