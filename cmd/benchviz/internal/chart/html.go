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
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTMLDashboard writes an interactive single-page dashboard of the
// same panels the PNG dashboard shows. Useful when zooming into the
// small-n end of a complexity curve.
func HTMLDashboard(path string, data DashboardData) error {
	page := components.NewPage()
	page.PageTitle = data.Title

	for _, panel := range data.Complexity {
		if len(panel.Series) == 0 {
			continue
		}
		page.AddCharts(htmlLine(panel, "Execution Time (ms)", true))
	}
	for _, panel := range data.Distributions {
		if len(panel.Table.Series) == 0 {
			continue
		}
		page.AddCharts(htmlBars(panel))
	}
	for _, panel := range data.Speedups {
		if len(panel.Series) == 0 {
			continue
		}
		page.AddCharts(htmlLine(panel, "Speedup Factor", false))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard page: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}

// htmlLine builds one line panel. The x axis is categorical on the
// sorted sizes every series shares.
func htmlLine(panel TitledSeries, yName string, logY bool) *charts.Line {
	line := charts.NewLine()
	yAxis := opts.YAxis{Name: yName}
	if logY {
		yAxis.Type = "log"
	}
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: panel.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)

	xs := sharedXs(panel.Series)
	labels := make([]string, len(xs))
	for i, x := range xs {
		labels[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	line.SetXAxis(labels)

	for _, s := range panel.Series {
		byX := make(map[float64]float64, len(s.Points))
		for _, pt := range s.Points {
			byX[pt.X] = pt.Y
		}
		points := make([]opts.LineData, len(xs))
		for i, x := range xs {
			if y, ok := byX[x]; ok {
				points[i] = opts.LineData{Value: y}
			} else {
				points[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(s.Name, points)
	}
	return line
}

func htmlBars(panel TitledBars) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: panel.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	bar.SetXAxis(panel.Table.Categories)
	for _, s := range panel.Table.Series {
		values := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			values[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, values)
	}
	return bar
}

// sharedXs merges the x values of all series, ascending.
func sharedXs(series []Series) []float64 {
	seen := make(map[float64]bool)
	var xs []float64
	for _, s := range series {
		for _, pt := range s.Points {
			if !seen[pt.X] {
				seen[pt.X] = true
				xs = append(xs, pt.X)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}
