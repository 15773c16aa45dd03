package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"go.viam.com/pclabel/pointcloud"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad number in %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// parseVector parses "x,y,z".
func parseVector(s string) (r3.Vector, error) {
	vs, err := parseFloats(s, 3)
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: vs[0], Y: vs[1], Z: vs[2]}, nil
}

// parseVectors parses "x,y,z;x,y,z;...".
func parseVectors(s string) ([]r3.Vector, error) {
	var out []r3.Vector
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := parseVector(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no vectors in %q", s)
	}
	return out, nil
}

// parsePolygon parses "x,z;x,z;..." into vertices at height y.
func parsePolygon(s string, y float64) ([]r3.Vector, error) {
	var vertices []r3.Vector
	for _, pair := range strings.Split(s, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		xz, err := parseFloats(pair, 2)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, r3.Vector{X: xz[0], Y: y, Z: xz[1]})
	}
	if len(vertices) < 3 {
		return nil, errors.Errorf("polygon %q needs at least 3 vertices", s)
	}
	return vertices, nil
}

func parseLabel(s string) (pointcloud.Label, error) {
	switch strings.ToLower(s) {
	case "classified", "1":
		return pointcloud.Classified, nil
	case "unclassified", "0":
		return pointcloud.Unclassified, nil
	default:
		return 0, errors.Errorf("unknown label %q", s)
	}
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("%.3f, %.3f, %.3f", v.X, v.Y, v.Z)
}

func labelTable(labels []pointcloud.Label) string {
	counts := pointcloud.CountLabels(labels)
	keys := make([]pointcloud.Label, 0, len(counts))
	for l := range counts {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Label", "Points"})
	for _, l := range keys {
		t.AppendRow(table.Row{l.String(), counts[l]})
	}
	return t.Render()
}
