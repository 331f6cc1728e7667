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
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PNG renders charts to PNG files with gonum/plot.
type PNG struct {
	width  vg.Length
	height vg.Length
}

// NewPNG creates a renderer with the given single-panel canvas size
// in inches. Non-positive sizes fall back to 12x8.
func NewPNG(widthIn, heightIn float64) *PNG {
	if widthIn <= 0 {
		widthIn = 12
	}
	if heightIn <= 0 {
		heightIn = 8
	}
	return &PNG{
		width:  vg.Length(widthIn) * vg.Inch,
		height: vg.Length(heightIn) * vg.Inch,
	}
}

// Lines renders one line-with-markers chart.
func (c *PNG) Lines(path, title, xLabel, yLabel string, series []Series) error {
	p, err := linePlot(title, xLabel, yLabel, series, false)
	if err != nil {
		return err
	}
	return p.Save(c.width, c.height, path)
}

// SpeedupLines renders speedup curves with a dashed reference line at
// ratio 1.0 (no speedup).
func (c *PNG) SpeedupLines(path, title string, series []Series) error {
	p, err := linePlot(title, "Number of Points (n)", "Speedup Factor (higher is better)", series, false)
	if err != nil {
		return err
	}
	if err := addHorizontalRef(p, series, 1.0); err != nil {
		return err
	}
	return p.Save(c.width, c.height, path)
}

// ComplexityPair renders a linear-scale and a log-log panel side by
// side in one file. The log-log panel carries O(n), O(n log n), and
// O(n²) reference curves.
func (c *PNG) ComplexityPair(path, title string, series []Series) error {
	linear, err := linePlot(title+" (Linear Scale)", "Number of Points (n)", "Execution Time (ms)", series, false)
	if err != nil {
		return err
	}
	logLog, err := linePlot(title+" (Log-Log Scale)", "Number of Points (n)", "Execution Time (ms)", series, true)
	if err != nil {
		return err
	}
	if err := addComplexityRefs(logLog, series); err != nil {
		return err
	}
	return c.writeTiled(path, [][]*plot.Plot{{linear, logLog}}, 2*c.width, c.height)
}

// GroupedBars renders a grouped bar chart, one bar per
// (category, series) pair.
func (c *PNG) GroupedBars(path, title, xLabel, yLabel string, table BarTable) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if err := addGroupedBars(p, table); err != nil {
		return err
	}
	return p.Save(c.width, c.height, path)
}

// linePlot builds a line-with-markers plot shared by every curve view.
func linePlot(title, xLabel, yLabel string, series []Series, logLog bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	if logLog {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for i, s := range series {
		xys := make(plotter.XYs, 0, len(s.Points))
		for _, pt := range s.Points {
			y := pt.Y
			if logLog && y <= 0 {
				y = 1e-6 // log scale cannot place zero
			}
			xys = append(xys, plotter.XY{X: pt.X, Y: y})
		}
		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		scatter.Color = plotutil.Color(i)
		scatter.Shape = plotutil.Shape(i)
		p.Add(line, scatter)
		p.Legend.Add(s.Name, line, scatter)
	}
	return p, nil
}

// addGroupedBars places one offset bar chart per series.
func addGroupedBars(p *plot.Plot, table BarTable) error {
	if len(table.Series) == 0 {
		return fmt.Errorf("bar table has no series")
	}
	barWidth := vg.Points(14)
	spacing := vg.Points(2)
	groupWidth := (barWidth + spacing) * vg.Length(len(table.Series)-1)

	for i, s := range table.Series {
		values := make(plotter.Values, len(s.Values))
		copy(values, s.Values)
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("bar series %s: %w", s.Name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = (barWidth+spacing)*vg.Length(i) - groupWidth/2
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.Legend.Top = true
	p.NominalX(table.Categories...)
	return nil
}

// addComplexityRefs overlays O(n), O(n log n), and O(n²) guides
// scaled to the data so the measured curves are visually comparable
// to the classic growth rates.
func addComplexityRefs(p *plot.Plot, series []Series) error {
	minX, maxX, maxY := seriesExtent(series)
	if maxX <= minX || maxY <= 0 {
		return nil
	}
	scale := maxY / (maxX * maxX) * 0.1

	refs := []struct {
		name   string
		dashes []vg.Length
		f      func(x float64) float64
	}{
		{"O(n)", []vg.Length{vg.Points(6), vg.Points(4)}, func(x float64) float64 { return scale * x }},
		{"O(n log n)", []vg.Length{vg.Points(2), vg.Points(3)}, func(x float64) float64 { return scale * x * math.Log(x) }},
		{"O(n²)", []vg.Length{vg.Points(1), vg.Points(2)}, func(x float64) float64 { return scale * x * x }},
	}

	const samples = 100
	for _, ref := range refs {
		xys := make(plotter.XYs, 0, samples)
		for i := 0; i < samples; i++ {
			x := minX * math.Pow(maxX/minX, float64(i)/float64(samples-1))
			y := ref.f(x)
			if y <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("reference %s: %w", ref.name, err)
		}
		line.Color = color.Gray{Y: 80}
		line.Dashes = ref.dashes
		p.Add(line)
		p.Legend.Add(ref.name, line)
	}
	return nil
}

// addHorizontalRef draws a dashed horizontal guide across the data's
// x extent.
func addHorizontalRef(p *plot.Plot, series []Series, y float64) error {
	minX, maxX, _ := seriesExtent(series)
	if maxX < minX {
		return nil
	}
	line, err := plotter.NewLine(plotter.XYs{{X: minX, Y: y}, {X: maxX, Y: y}})
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 200, A: 255}
	line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(line)
	return nil
}

func seriesExtent(series []Series) (minX, maxX, maxY float64) {
	minX = math.Inf(1)
	maxX = math.Inf(-1)
	for _, s := range series {
		for _, pt := range s.Points {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return minX, maxX, maxY
}

// writeTiled lays plots out on a shared canvas and writes one PNG.
// Nil cells stay blank.
func (c *PNG) writeTiled(path string, plots [][]*plot.Plot, width, height vg.Length) error {
	rows := len(plots)
	cols := 0
	for _, row := range plots {
		if len(row) > cols {
			cols = len(row)
		}
	}
	// Align needs a rectangular grid.
	for r, row := range plots {
		for len(row) < cols {
			row = append(row, nil)
		}
		plots[r] = row
	}
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 4, PadRight: vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for col := range plots[r] {
			if plots[r][col] != nil {
				plots[r][col].Draw(canvases[r][col])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}
