package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/selection"
	"go.viam.com/pclabel/spatialmath"
)

// InfoAction prints point counts, per axis statistics and the shape of the spatial index.
func InfoAction(c *cli.Context) error {
	ws, err := newWorkspace(c)
	if err != nil {
		return err
	}
	summary := pointcloud.Summarize(ws.cloud)
	printf(c.App.Writer, "points: %d", summary.Points)
	printf(c.App.Writer, "defined: %d", summary.Defined)
	printf(c.App.Writer, "cells: %d (size %g)", ws.index.NumCells(), ws.index.CellSize())
	if summary.Defined == 0 {
		return nil
	}
	if lo, hi, ok := ws.index.Bounds(); ok {
		printf(c.App.Writer, "cell bounds: %v to %v", lo, hi)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Axis", "Min", "Max", "Mean", "StdDev"})
	lo, hi := summary.Meta.Min(), summary.Meta.Max()
	t.AppendRows([]table.Row{
		{"X", lo.X, hi.X, summary.Mean.X, summary.StdDev.X},
		{"Y", lo.Y, hi.Y, summary.Mean.Y, summary.StdDev.Y},
		{"Z", lo.Z, hi.Z, summary.Mean.Z, summary.StdDev.Z},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Transformer: formatFloat},
		{Number: 3, Transformer: formatFloat},
		{Number: 4, Transformer: formatFloat},
		{Number: 5, Transformer: formatFloat},
	})
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// PickAction lists the points near a ray.
func PickAction(c *cli.Context) error {
	ws, err := newWorkspace(c)
	if err != nil {
		return err
	}
	origin, err := parseVector(c.String(pickFlagOrigin))
	if err != nil {
		return errors.Wrap(err, pickFlagOrigin)
	}
	dir, err := parseVector(c.String(pickFlagDir))
	if err != nil {
		return errors.Wrap(err, pickFlagDir)
	}
	radius := ws.conf.Brush.Radius
	if c.IsSet(pickFlagRadius) {
		radius = c.Float64(pickFlagRadius)
	}
	length := ws.conf.RayLength
	if c.IsSet(pickFlagLength) {
		length = c.Float64(pickFlagLength)
	}

	ray := spatialmath.NewRay(origin, dir)
	hits := ws.index.NearLine(ray, length, radius)
	printf(c.App.Writer, "%d points within %g of %v", len(hits), radius, ray)
	if len(hits) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Index", "Position", "Distance"})
	limit := c.Int(pickFlagLimit)
	for n, i := range hits {
		if limit > 0 && n >= limit {
			break
		}
		p, _ := ws.cloud.Position(i)
		t.AppendRow(table.Row{n + 1, i, formatVector(p), formatFloat(spatialmath.DistToLine(ray.Origin, ray.Direction, p))})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

// StrokeAction paints or erases along one ray per origin in --origins, all sharing --dir, then
// commits the stroke to history.
func StrokeAction(c *cli.Context) error {
	ws, err := newWorkspace(c)
	if err != nil {
		return err
	}
	mode, err := selection.ParseMode(c.String(strokeFlagMode))
	if err != nil {
		return err
	}
	if _, ok := mode.TargetLabel(); !ok {
		return errors.Errorf("stroke mode must be draw or erase, got %q", mode)
	}
	dir, err := parseVector(c.String(pickFlagDir))
	if err != nil {
		return errors.Wrap(err, pickFlagDir)
	}

	origins, err := parseVectors(c.String(strokeFlagOrigins))
	if err != nil {
		return errors.Wrap(err, strokeFlagOrigins)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Frame", "Origin", "Hits", "Changed"})
	ws.session.StartStroke()
	for frame, origin := range origins {
		res := ws.session.UpdateCursor(selection.Cursor{Ray: spatialmath.NewRay(origin, dir), Mode: mode})
		t.AppendRow(table.Row{frame + 1, formatVector(origin), len(res.Hits), res.Changed})
	}
	ws.session.StopStroke()
	ws.history.Save()

	printf(c.App.Writer, "%s", t.Render())
	if start, end, ok := ws.cloud.Flush(); ok {
		printf(c.App.Writer, "dirty range: [%d, %d]", start, end)
	}
	printf(c.App.Writer, "%s", labelTable(ws.cloud.Labels()))

	if c.Bool(strokeFlagUndo) {
		if !ws.history.Undo() {
			return errors.New("nothing to undo")
		}
		printf(c.App.Writer, "after undo:")
		printf(c.App.Writer, "%s", labelTable(ws.cloud.Labels()))
	}
	return nil
}

// FillAction labels every point inside the given polygon.
func FillAction(c *cli.Context) error {
	ws, err := newWorkspace(c)
	if err != nil {
		return err
	}
	label, err := parseLabel(c.String(fillFlagLabel))
	if err != nil {
		return err
	}
	vertices, err := parsePolygon(c.String(fillFlagPolygon), ws.conf.PolygonNodeHeight)
	if err != nil {
		return err
	}
	ws.polygons.Add(vertices...)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Polygon", "Nodes", "Changed"})
	ids := ws.polygons.IDs()
	for i, vertices := range ws.polygons.Open() {
		changed := ws.session.FillPolygon(vertices, label)
		t.AppendRow(table.Row{ids[i].String(), len(vertices), changed})
	}
	ws.history.Save()

	printf(c.App.Writer, "%s", t.Render())
	printf(c.App.Writer, "%s", labelTable(ws.cloud.Labels()))
	return nil
}

func formatFloat(val interface{}) string {
	if f, ok := val.(float64); ok {
		return fmt.Sprintf("%.3f", f)
	}
	return fmt.Sprint(val)
}
