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
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
)

// View names, used by the CLI to list and select views.
const (
	ViewComplexity    = "complexity"
	ViewDistributions = "distributions"
	ViewMemory        = "memory"
	ViewDimensions    = "dimensions"
	ViewHeatmap       = "heatmap"
	ViewSpeedup       = "speedup"
	ViewDashboard     = "dashboard"
)

// Definition describes one view for listing and selection.
type Definition struct {
	// Name is the stable identifier used with --only.
	Name string

	// Description is a one-line summary for `benchviz views`.
	Description string

	// Pattern documents the output filename(s) the view produces.
	Pattern string
}

// Registry lists every view in render order.
func Registry() []Definition {
	return []Definition{
		{
			Name:        ViewComplexity,
			Description: "Execution time vs input size, linear and log-log panels with growth-rate guides",
			Pattern:     "{dim}_{group}_complexity.png",
		},
		{
			Name:        ViewDistributions,
			Description: "Execution time by point distribution at the largest input size",
			Pattern:     "{dim}_{group}_distributions.png",
		},
		{
			Name:        ViewMemory,
			Description: "Memory usage vs input size",
			Pattern:     "{dim}_{group}_memory.png",
		},
		{
			Name:        ViewDimensions,
			Description: "2D vs 3D execution time per algorithm",
			Pattern:     "{algorithm}_dimension_comparison.png",
		},
		{
			Name:        ViewHeatmap,
			Description: "Mean execution time heatmap over size and algorithm (UNIFORM only)",
			Pattern:     "{dim}_{group}_heatmap.png",
		},
		{
			Name:        ViewSpeedup,
			Description: "Speedup vs the naive baseline, per distribution",
			Pattern:     "{dim}_{group}_{distribution}_speedup.png",
		},
		{
			Name:        ViewDashboard,
			Description: "Composite overview of complexity, distribution, and speedup panels",
			Pattern:     "performance_dashboard.png",
		},
	}
}

// KnownView reports whether name identifies a registered view.
func KnownView(name string) bool {
	for _, def := range Registry() {
		if def.Name == name {
			return true
		}
	}
	return false
}

// uniformDistribution is the distribution the heatmap and dashboard
// speedup panels restrict to.
const uniformDistribution = "UNIFORM"

// defaultBaselines maps each algorithm group to the baseline the
// speedup views divide against.
var defaultBaselines = map[dataset.Group]string{
	dataset.GroupClosestPair: "CLOSEST_PAIR_NAIVE",
	dataset.GroupDiameter:    "DIAMETER_NAIVE",
}

// Options configures a Runner.
type Options struct {
	// OutDir is the directory chart files are written to. It is
	// created if missing.
	OutDir string

	// Only restricts the run to the named views. Empty means all.
	Only []string

	// Baselines overrides the speedup baseline per group. Missing
	// groups fall back to the naive implementations.
	Baselines map[dataset.Group]string

	// Labels overrides display names per algorithm identifier.
	Labels map[string]string

	// Parallel renders independent chart files concurrently.
	Parallel bool
}

// baselineFor resolves the speedup baseline for a group.
func (o Options) baselineFor(group dataset.Group) string {
	if id, ok := o.Baselines[group]; ok && id != "" {
		return id
	}
	return defaultBaselines[group]
}

// labelFor resolves the display label for an algorithm identifier.
func (o Options) labelFor(id string) string {
	if name, ok := o.Labels[id]; ok && name != "" {
		return name
	}
	return dataset.DisplayNameFor(id)
}

// Wants reports whether the named view is selected by Only.
func (o Options) Wants(name string) bool {
	if len(o.Only) == 0 {
		return true
	}
	for _, want := range o.Only {
		if want == name {
			return true
		}
	}
	return false
}
