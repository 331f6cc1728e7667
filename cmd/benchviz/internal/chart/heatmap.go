// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package chart

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// sizeGrid adapts a HeatGrid to plotter.GridXYZ. Both axes are
// categorical (equally spaced), matching how the aggregated table is
// read: row r is Sizes[r], column c is Columns[c].
type sizeGrid struct {
	grid HeatGrid
}

func (g sizeGrid) Dims() (int, int)   { return len(g.grid.Columns), len(g.grid.Sizes) }
func (g sizeGrid) X(c int) float64    { return float64(c) }
func (g sizeGrid) Y(r int) float64    { return float64(r) }
func (g sizeGrid) Z(c, r int) float64 { return g.grid.Values[r][c] }

// Heatmap renders a size-by-algorithm heatmap. NaN cells are left
// blank.
func (c *PNG) Heatmap(path, title string, grid HeatGrid) error {
	if len(grid.Sizes) == 0 || len(grid.Columns) == 0 {
		return fmt.Errorf("heatmap grid is empty")
	}
	for r, row := range grid.Values {
		if len(row) != len(grid.Columns) {
			return fmt.Errorf("heatmap row %d has %d cells, want %d", r, len(row), len(grid.Columns))
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Algorithm"
	p.Y.Label.Text = "Number of Points (n)"

	hm := plotter.NewHeatMap(sizeGrid{grid: grid}, palette.Heat(16, 1))
	p.Add(hm)

	xTicks := make([]plot.Tick, len(grid.Columns))
	for i, name := range grid.Columns {
		xTicks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = -0.8

	yTicks := make([]plot.Tick, len(grid.Sizes))
	for i, size := range grid.Sizes {
		yTicks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(size)}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	return p.Save(c.width, c.height, path)
}

var _ plotter.GridXYZ = sizeGrid{}
