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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// HTML Dashboard
// =============================================================================

func TestHTMLDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "performance_dashboard.html")

	data := DashboardData{
		Title: "Point Cloud Algorithm Performance Dashboard",
		Complexity: []TitledSeries{
			{Title: "Closest Pair Algorithms - 2D (Log-Log Scale)", Series: sampleSeries()},
			{Title: "Diameter Algorithms - 3D (Log-Log Scale)"}, // empty, skipped
		},
		Distributions: []TitledBars{
			{Title: "Closest Pair Algorithms - 2D Distribution Comparison (n=1000)", Table: sampleBars()},
		},
		Speedups: []TitledSeries{
			{Title: "2D Algorithm Speedup vs Naive (UNIFORM)", Series: sampleSeries()},
		},
	}
	require.NoError(t, HTMLDashboard(path, data))

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(html)

	assert.Contains(t, body, "Closest Pair Algorithms - 2D (Log-Log Scale)")
	assert.Contains(t, body, "KD-Tree")
	assert.Contains(t, body, "UNIFORM")
	assert.NotContains(t, body, "Diameter Algorithms - 3D")
}

func TestHTMLDashboard_CreateError(t *testing.T) {
	err := HTMLDashboard(filepath.Join(t.TempDir(), "missing", "nested", "d.html"), DashboardData{})
	assert.Error(t, err)
}

func TestSharedXs(t *testing.T) {
	series := []Series{
		{Points: []Point{{X: 500}, {X: 100}}},
		{Points: []Point{{X: 1000}, {X: 100}}},
	}
	assert.Equal(t, []float64{100, 500, 1000}, sharedXs(series))
}
