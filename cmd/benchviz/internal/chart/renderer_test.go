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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Fixtures
// =============================================================================

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleSeries() []Series {
	return []Series{
		{Name: "Naive O(n²)", Points: []Point{{X: 100, Y: 10}, {X: 500, Y: 250}, {X: 1000, Y: 1000}}},
		{Name: "KD-Tree", Points: []Point{{X: 100, Y: 1}, {X: 500, Y: 6}, {X: 1000, Y: 14}}},
	}
}

func sampleBars() BarTable {
	return BarTable{
		Categories: []string{"Naive O(n²)", "KD-Tree"},
		Series: []BarSeries{
			{Name: "UNIFORM", Values: []float64{10, 2}},
			{Name: "CLUSTERED", Values: []float64{12, 3}},
		},
	}
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

// =============================================================================
// PNG Renderer
// =============================================================================

func TestPNG_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.png")
	c := NewPNG(6, 4)

	err := c.Lines(path, "Memory Usage", "Number of Points (n)", "Memory Usage (MB)", sampleSeries())
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_SpeedupLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speedup.png")
	c := NewPNG(6, 4)

	err := c.SpeedupLines(path, "Speedup vs Naive", sampleSeries())
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_ComplexityPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complexity.png")
	c := NewPNG(6, 4)

	err := c.ComplexityPair(path, "Closest Pair Algorithms - 2D", sampleSeries())
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_GroupedBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")
	c := NewPNG(6, 4)

	err := c.GroupedBars(path, "Distribution Comparison", "Algorithm", "Execution Time (ms)", sampleBars())
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_GroupedBars_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")
	c := NewPNG(6, 4)

	err := c.GroupedBars(path, "t", "x", "y", BarTable{Categories: []string{"a"}})
	assert.Error(t, err)
}

func TestNewPNG_NonPositiveSizeFallsBack(t *testing.T) {
	c := NewPNG(0, -3)
	path := filepath.Join(t.TempDir(), "fallback.png")
	require.NoError(t, c.Lines(path, "t", "x", "y", sampleSeries()))
	requirePNG(t, path)
}

// =============================================================================
// Heatmap
// =============================================================================

func TestPNG_Heatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.png")
	c := NewPNG(6, 4)

	grid := HeatGrid{
		Columns: []string{"Naive O(n²)", "KD-Tree"},
		Sizes:   []int{100, 500},
		Values: [][]float64{
			{10, 1},
			{250, math.NaN()}, // missing cell renders blank
		},
	}
	err := c.Heatmap(path, "Performance Heatmap (UNIFORM)", grid)
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_Heatmap_EmptyGrid(t *testing.T) {
	c := NewPNG(6, 4)
	err := c.Heatmap(filepath.Join(t.TempDir(), "h.png"), "t", HeatGrid{})
	assert.Error(t, err)
}

func TestPNG_Heatmap_RaggedGrid(t *testing.T) {
	c := NewPNG(6, 4)
	grid := HeatGrid{
		Columns: []string{"a", "b"},
		Sizes:   []int{100},
		Values:  [][]float64{{1}},
	}
	err := c.Heatmap(filepath.Join(t.TempDir(), "h.png"), "t", grid)
	assert.Error(t, err)
}

func TestSizeGrid(t *testing.T) {
	g := sizeGrid{grid: HeatGrid{
		Columns: []string{"a", "b", "c"},
		Sizes:   []int{100, 200},
		Values: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
		},
	}}

	cols, rows := g.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1.0, g.X(1))
	assert.Equal(t, 0.0, g.Y(0))
	// Z(c, r) reads Values[row][col].
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.Z(1, 0))
}

// =============================================================================
// Dashboard
// =============================================================================

func TestPNG_Dashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.png")
	c := NewPNG(6, 4)

	data := DashboardData{
		Title: "Point Cloud Algorithm Performance Dashboard",
		Complexity: []TitledSeries{
			{Title: "Closest Pair Algorithms - 2D (Log-Log Scale)", Series: sampleSeries()},
			{Title: "Closest Pair Algorithms - 3D (Log-Log Scale)", Series: sampleSeries()},
			// Remaining panels empty: the grid cells stay blank.
		},
		Distributions: []TitledBars{
			{Title: "Closest Pair Algorithms - 2D Distribution Comparison (n=1000)", Table: sampleBars()},
		},
		Speedups: []TitledSeries{
			{Title: "2D Algorithm Speedup vs Naive (UNIFORM)", Series: sampleSeries()},
		},
	}
	err := c.Dashboard(path, data)
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestPNG_Dashboard_AllPanelsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.png")
	c := NewPNG(6, 4)

	// A dataset can legitimately fill no panels; the file still renders.
	err := c.Dashboard(path, DashboardData{Title: "empty"})
	require.NoError(t, err)
	requirePNG(t, path)
}
