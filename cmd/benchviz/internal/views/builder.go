// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package views

import (
	"math"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/aggregate"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/chart"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
)

// lineSeries reduces records to one mean-per-size line per algorithm,
// in the fixed algorithm order. Points come out sorted by size because
// the aggregation is.
func lineSeries(records []dataset.Record, field aggregate.Field, label func(string) string) []chart.Series {
	aggs := aggregate.MeanBy(records, aggregate.Keys{Algorithm: true, Size: true}, field)

	points := make(map[string][]chart.Point)
	for _, a := range aggs {
		points[a.Key.Algorithm] = append(points[a.Key.Algorithm], chart.Point{
			X: float64(a.Key.Size),
			Y: a.Mean,
		})
	}

	var out []chart.Series
	for _, id := range aggregate.Algorithms(records) {
		out = append(out, chart.Series{Name: label(id), Points: points[id]})
	}
	return out
}

// dimensionSeries builds one line per dimension for a single
// algorithm's records. Dimensions with no data are omitted.
func dimensionSeries(records []dataset.Record) []chart.Series {
	aggs := aggregate.MeanBy(records, aggregate.Keys{Dimension: true, Size: true}, aggregate.FieldExecutionMs)

	points := make(map[dataset.Dimension][]chart.Point)
	for _, a := range aggs {
		points[a.Key.Dimension] = append(points[a.Key.Dimension], chart.Point{
			X: float64(a.Key.Size),
			Y: a.Mean,
		})
	}

	var out []chart.Series
	for _, dim := range dataset.Dimensions() {
		if pts, ok := points[dim]; ok {
			out = append(out, chart.Series{Name: dim.Label(), Points: pts})
		}
	}
	return out
}

// distributionTable reduces records (already restricted to the
// largest size) to one bar per (algorithm, distribution).
// Combinations with no observations get a zero-height bar.
func distributionTable(records []dataset.Record, label func(string) string) chart.BarTable {
	aggs := aggregate.MeanBy(records, aggregate.Keys{Algorithm: true, Distribution: true}, aggregate.FieldExecutionMs)

	algorithms := aggregate.Algorithms(records)
	index := make(map[string]int, len(algorithms))
	categories := make([]string, len(algorithms))
	for i, id := range algorithms {
		index[id] = i
		categories[i] = label(id)
	}

	byDist := make(map[string][]float64)
	for _, a := range aggs {
		values, ok := byDist[a.Key.Distribution]
		if !ok {
			values = make([]float64, len(algorithms))
			byDist[a.Key.Distribution] = values
		}
		values[index[a.Key.Algorithm]] = a.Mean
	}

	table := chart.BarTable{Categories: categories}
	for _, dist := range aggregate.Distributions(records) {
		table.Series = append(table.Series, chart.BarSeries{
			Name:   dist,
			Values: byDist[dist],
		})
	}
	return table
}

// heatGrid pivots mean execution times into a size-by-algorithm
// matrix. Cells with no observations stay NaN and render blank.
func heatGrid(records []dataset.Record, label func(string) string) chart.HeatGrid {
	aggs := aggregate.MeanBy(records, aggregate.Keys{Algorithm: true, Size: true}, aggregate.FieldExecutionMs)

	algorithms := aggregate.Algorithms(records)
	sizes := aggregate.Sizes(records)

	colIndex := make(map[string]int, len(algorithms))
	columns := make([]string, len(algorithms))
	for i, id := range algorithms {
		colIndex[id] = i
		columns[i] = label(id)
	}
	rowIndex := make(map[int]int, len(sizes))
	for i, size := range sizes {
		rowIndex[size] = i
	}

	values := make([][]float64, len(sizes))
	for r := range values {
		values[r] = make([]float64, len(algorithms))
		for c := range values[r] {
			values[r][c] = math.NaN()
		}
	}
	for _, a := range aggs {
		values[rowIndex[a.Key.Size]][colIndex[a.Key.Algorithm]] = a.Mean
	}

	return chart.HeatGrid{Columns: columns, Sizes: sizes, Values: values}
}

// speedupSeries converts speedup points into one line per candidate
// algorithm, keeping the fixed algorithm order. Labels run through
// prefix+label so dashboard panels can tag the group ("CP: ", "DM: ").
func speedupSeries(points []aggregate.SpeedupPoint, prefix string, label func(string) string) []chart.Series {
	byAlg := make(map[string][]chart.Point)
	var order []string
	seen := make(map[string]bool)
	for _, pt := range points {
		byAlg[pt.Algorithm] = append(byAlg[pt.Algorithm], chart.Point{
			X: float64(pt.Size),
			Y: pt.Ratio,
		})
		if !seen[pt.Algorithm] {
			seen[pt.Algorithm] = true
			order = append(order, pt.Algorithm)
		}
	}
	dataset.SortAlgorithms(order)

	var out []chart.Series
	for _, id := range order {
		out = append(out, chart.Series{Name: prefix + label(id), Points: byAlg[id]})
	}
	return out
}
