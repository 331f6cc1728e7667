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

// Point is one (x, y) sample in a series.
type Point struct {
	X float64
	Y float64
}

// Series is one labeled line on a chart. Points arrive sorted by X.
type Series struct {
	Name   string
	Points []Point
}

// BarSeries is one labeled value per category in a grouped bar chart.
type BarSeries struct {
	Name   string
	Values []float64
}

// BarTable is a grouped bar chart: one bar per (category, series).
type BarTable struct {
	Categories []string
	Series     []BarSeries
}

// HeatGrid is a size-by-algorithm matrix of mean values.
// Values[row][col] pairs Sizes[row] with Columns[col]; missing cells
// are NaN and render as gaps.
type HeatGrid struct {
	Columns []string
	Sizes   []int
	Values  [][]float64
}

// TitledSeries is one dashboard line panel.
type TitledSeries struct {
	Title  string
	Series []Series
}

// TitledBars is one dashboard bar panel.
type TitledBars struct {
	Title string
	Table BarTable
}

// DashboardData holds the prepared tables for the composite
// dashboard: four complexity panels, two distribution panels, and two
// speedup panels, in that grid order. Empty panels render blank.
type DashboardData struct {
	Title         string
	Complexity    []TitledSeries
	Distributions []TitledBars
	Speedups      []TitledSeries
}
