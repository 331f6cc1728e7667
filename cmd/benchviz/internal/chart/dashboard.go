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
	"gonum.org/v1/plot"
)

// Dashboard renders the composite overview: a 4x2 grid of log-log
// complexity, distribution, and speedup panels in one PNG.
func (c *PNG) Dashboard(path string, data DashboardData) error {
	grid := make([][]*plot.Plot, 4)
	for i := range grid {
		grid[i] = make([]*plot.Plot, 2)
	}

	// Rows 0-1: complexity panels, log-log with growth-rate guides.
	for i, panel := range data.Complexity {
		if i >= 4 || len(panel.Series) == 0 {
			continue
		}
		p, err := linePlot(panel.Title, "Number of Points (n)", "Execution Time (ms)", panel.Series, true)
		if err != nil {
			return err
		}
		if err := addComplexityRefs(p, panel.Series); err != nil {
			return err
		}
		grid[i/2][i%2] = p
	}

	// Row 2: distribution comparisons at the maximum size.
	for i, panel := range data.Distributions {
		if i >= 2 || len(panel.Table.Series) == 0 {
			continue
		}
		p := plot.New()
		p.Title.Text = panel.Title
		p.X.Label.Text = "Algorithm"
		p.Y.Label.Text = "Execution Time (ms)"
		if err := addGroupedBars(p, panel.Table); err != nil {
			return err
		}
		grid[2][i] = p
	}

	// Row 3: speedup vs the naive baselines.
	for i, panel := range data.Speedups {
		if i >= 2 || len(panel.Series) == 0 {
			continue
		}
		p, err := linePlot(panel.Title, "Number of Points (n)", "Speedup Factor (higher is better)", panel.Series, false)
		if err != nil {
			return err
		}
		if err := addHorizontalRef(p, panel.Series, 1.0); err != nil {
			return err
		}
		grid[3][i] = p
	}

	return c.writeTiled(path, grid, 2*c.width, 4*c.height)
}
