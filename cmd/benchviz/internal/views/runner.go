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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/aggregate"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/chart"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
	"github.com/AleutianAI/benchviz/pkg/logging"
)

// Renderer is the chart backend the Runner draws with. chart.PNG
// satisfies it; tests substitute a recorder.
type Renderer interface {
	ComplexityPair(path, title string, series []chart.Series) error
	Lines(path, title, xLabel, yLabel string, series []chart.Series) error
	SpeedupLines(path, title string, series []chart.Series) error
	GroupedBars(path, title, xLabel, yLabel string, table chart.BarTable) error
	Heatmap(path, title string, grid chart.HeatGrid) error
	Dashboard(path string, data chart.DashboardData) error
}

// Skip records one chart that was not produced and why.
type Skip struct {
	View   string
	Path   string
	Reason string
}

// Report summarizes a run: which files were written and which charts
// were skipped after a failure.
type Report struct {
	mu      sync.Mutex
	Written []string
	Skipped []Skip
}

func (r *Report) written(path string) {
	r.mu.Lock()
	r.Written = append(r.Written, path)
	r.mu.Unlock()
}

func (r *Report) skip(view, path, reason string) {
	r.mu.Lock()
	r.Skipped = append(r.Skipped, Skip{View: view, Path: path, Reason: reason})
	r.mu.Unlock()
}

// Runner renders every selected view for a dataset.
type Runner struct {
	renderer Renderer
	opts     Options
	log      *logging.Logger
}

// NewRunner creates a Runner. A nil logger falls back to the default
// stderr logger.
func NewRunner(renderer Renderer, opts Options, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.Default()
	}
	return &Runner{renderer: renderer, opts: opts, log: log}
}

// job is one chart file to produce.
type job struct {
	view string
	path string
	run  func() error
}

// Run renders all selected views into Options.OutDir.
//
// # Description
//
// Each chart is an independent job. A job that fails is logged, its
// partial output removed, and recorded in the report; the remaining
// jobs still run. The returned error is non-nil only for whole-run
// failures: an empty dataset, an unwritable output directory, or a
// canceled context.
func (r *Runner) Run(ctx context.Context, records []dataset.Record) (*Report, error) {
	if len(records) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	if err := os.MkdirAll(r.opts.OutDir, 0750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	jobs := r.jobs(records)
	report := &Report{}

	if r.opts.Parallel {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, j := range jobs {
			j := j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r.runJob(j, report)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return report, err
		}
		return report, nil
	}

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		r.runJob(j, report)
	}
	return report, nil
}

// runJob executes one job under the per-chart failure policy.
func (r *Runner) runJob(j job, report *Report) {
	if err := j.run(); err != nil {
		r.log.Warn("view failed, skipping chart",
			"view", j.view,
			"path", j.path,
			"error", err.Error(),
		)
		// A failed render can leave a truncated file behind.
		_ = os.Remove(j.path)
		report.skip(j.view, j.path, err.Error())
		return
	}
	r.log.Debug("chart written", "view", j.view, "path", j.path)
	report.written(j.path)
}

// jobs fans the selected views out over the dimensions, groups, and
// distributions present in the data. Empty combinations produce no
// job at all.
func (r *Runner) jobs(records []dataset.Record) []job {
	var jobs []job
	if r.opts.Wants(ViewComplexity) {
		jobs = append(jobs, r.perGroupJobs(records, ViewComplexity, r.complexityJob)...)
	}
	if r.opts.Wants(ViewDistributions) {
		jobs = append(jobs, r.perGroupJobs(aggregate.FilterMaxSize(records), ViewDistributions, r.distributionJob(records))...)
	}
	if r.opts.Wants(ViewMemory) {
		jobs = append(jobs, r.perGroupJobs(records, ViewMemory, r.memoryJob)...)
	}
	if r.opts.Wants(ViewDimensions) {
		jobs = append(jobs, r.dimensionJobs(records)...)
	}
	if r.opts.Wants(ViewHeatmap) {
		jobs = append(jobs, r.perGroupJobs(aggregate.FilterDistribution(records, uniformDistribution), ViewHeatmap, r.heatmapJob)...)
	}
	if r.opts.Wants(ViewSpeedup) {
		jobs = append(jobs, r.speedupJobs(records)...)
	}
	if r.opts.Wants(ViewDashboard) {
		jobs = append(jobs, r.dashboardJob(records))
	}
	return jobs
}

// groupJobFunc builds the job for one non-empty (dimension, group)
// slice of the dataset.
type groupJobFunc func(dim dataset.Dimension, group dataset.Group, subset []dataset.Record) job

// perGroupJobs runs the dimension-by-group fan-out shared by most
// views.
func (r *Runner) perGroupJobs(records []dataset.Record, view string, build groupJobFunc) []job {
	var jobs []job
	for _, dim := range dataset.Dimensions() {
		dimRecords := aggregate.FilterDimension(records, dim)
		for _, group := range dataset.Groups() {
			subset := aggregate.FilterGroup(dimRecords, group)
			if len(subset) == 0 {
				r.log.Debug("no data for combination, skipping",
					"view", view, "dimension", dim.Label(), "group", string(group))
				continue
			}
			jobs = append(jobs, build(dim, group, subset))
		}
	}
	return jobs
}

func (r *Runner) complexityJob(dim dataset.Dimension, group dataset.Group, subset []dataset.Record) job {
	path := r.outPath("%s_%s_complexity.png", dim.Label(), group.FileLabel())
	return job{
		view: ViewComplexity,
		path: path,
		run: func() error {
			series := lineSeries(subset, aggregate.FieldExecutionMs, r.opts.labelFor)
			title := fmt.Sprintf("%s Algorithms - %s", group, dim.Label())
			return r.renderer.ComplexityPair(path, title, series)
		},
	}
}

// distributionJob captures the full dataset so the title can name the
// global maximum size the subset was restricted to.
func (r *Runner) distributionJob(all []dataset.Record) groupJobFunc {
	maxSize, _ := aggregate.MaxSize(all)
	return func(dim dataset.Dimension, group dataset.Group, subset []dataset.Record) job {
		path := r.outPath("%s_%s_distributions.png", dim.Label(), group.FileLabel())
		return job{
			view: ViewDistributions,
			path: path,
			run: func() error {
				table := distributionTable(subset, r.opts.labelFor)
				title := fmt.Sprintf("%s Algorithms - %s Distribution Comparison (n=%d)", group, dim.Label(), maxSize)
				return r.renderer.GroupedBars(path, title, "Algorithm", "Execution Time (ms)", table)
			},
		}
	}
}

func (r *Runner) memoryJob(dim dataset.Dimension, group dataset.Group, subset []dataset.Record) job {
	path := r.outPath("%s_%s_memory.png", dim.Label(), group.FileLabel())
	return job{
		view: ViewMemory,
		path: path,
		run: func() error {
			series := lineSeries(subset, aggregate.FieldMemoryMB, r.opts.labelFor)
			title := fmt.Sprintf("%s Algorithms - %s Memory Usage", group, dim.Label())
			return r.renderer.Lines(path, title, "Number of Points (n)", "Memory Usage (MB)", series)
		},
	}
}

func (r *Runner) heatmapJob(dim dataset.Dimension, group dataset.Group, subset []dataset.Record) job {
	path := r.outPath("%s_%s_heatmap.png", dim.Label(), group.FileLabel())
	return job{
		view: ViewHeatmap,
		path: path,
		run: func() error {
			grid := heatGrid(subset, r.opts.labelFor)
			title := fmt.Sprintf("%s Algorithms - %s Performance Heatmap (%s)", group, dim.Label(), uniformDistribution)
			return r.renderer.Heatmap(path, title, grid)
		},
	}
}

// dimensionJobs produces one 2D-vs-3D comparison per algorithm.
func (r *Runner) dimensionJobs(records []dataset.Record) []job {
	var jobs []job
	for _, id := range aggregate.Algorithms(records) {
		subset := aggregate.FilterAlgorithm(records, id)
		path := r.outPath("%s_dimension_comparison.png", id)
		jobs = append(jobs, job{
			view: ViewDimensions,
			path: path,
			run: func() error {
				series := dimensionSeries(subset)
				title := fmt.Sprintf("%s - 2D vs 3D Performance Comparison", r.opts.labelFor(id))
				return r.renderer.Lines(path, title, "Number of Points (n)", "Execution Time (ms)", series)
			},
		})
	}
	return jobs
}

// speedupJobs produces one chart per (dimension, group, distribution)
// with observations. A missing baseline surfaces as a job error so the
// runner's recovery policy applies.
func (r *Runner) speedupJobs(records []dataset.Record) []job {
	var jobs []job
	for _, dim := range dataset.Dimensions() {
		dimRecords := aggregate.FilterDimension(records, dim)
		for _, group := range dataset.Groups() {
			groupRecords := aggregate.FilterGroup(dimRecords, group)
			if len(groupRecords) == 0 {
				continue
			}
			baseline := r.opts.baselineFor(group)
			for _, dist := range aggregate.Distributions(groupRecords) {
				subset := aggregate.FilterDistribution(groupRecords, dist)
				path := r.outPath("%s_%s_%s_speedup.png", dim.Label(), group.FileLabel(), dist)
				title := fmt.Sprintf("%s Algorithms - %s Speedup vs Naive (%s)", group, dim.Label(), dist)
				jobs = append(jobs, job{
					view: ViewSpeedup,
					path: path,
					run: func() error {
						points, err := aggregate.SpeedupVsBaseline(subset, baseline)
						if err != nil {
							return err
						}
						series := speedupSeries(points, "", r.opts.labelFor)
						if len(series) == 0 {
							return fmt.Errorf("no candidate overlaps baseline %s on any size", baseline)
						}
						return r.renderer.SpeedupLines(path, title, series)
					},
				})
			}
		}
	}
	return jobs
}

func (r *Runner) dashboardJob(records []dataset.Record) job {
	path := filepath.Join(r.opts.OutDir, "performance_dashboard.png")
	return job{
		view: ViewDashboard,
		path: path,
		run: func() error {
			return r.renderer.Dashboard(path, BuildDashboard(records, r.opts))
		},
	}
}

func (r *Runner) outPath(format string, args ...any) string {
	return filepath.Join(r.opts.OutDir, fmt.Sprintf(format, args...))
}

// BuildDashboard assembles the composite overview tables: four
// log-log complexity panels (closest pair then diameter, 2D then 3D),
// two closest-pair distribution panels, and two per-dimension speedup
// panels restricted to UNIFORM with both groups overlaid.
//
// Exported so the HTML dashboard can reuse the exact same tables.
func BuildDashboard(records []dataset.Record, opts Options) chart.DashboardData {
	data := chart.DashboardData{Title: "Point Cloud Algorithm Performance Dashboard"}

	for _, group := range dataset.Groups() {
		for _, dim := range dataset.Dimensions() {
			subset := aggregate.FilterGroup(aggregate.FilterDimension(records, dim), group)
			data.Complexity = append(data.Complexity, chart.TitledSeries{
				Title:  fmt.Sprintf("%s Algorithms - %s (Log-Log Scale)", group, dim.Label()),
				Series: lineSeries(subset, aggregate.FieldExecutionMs, opts.labelFor),
			})
		}
	}

	maxSize, _ := aggregate.MaxSize(records)
	largest := aggregate.FilterMaxSize(records)
	for _, dim := range dataset.Dimensions() {
		subset := aggregate.FilterGroup(aggregate.FilterDimension(largest, dim), dataset.GroupClosestPair)
		data.Distributions = append(data.Distributions, chart.TitledBars{
			Title: fmt.Sprintf("%s Algorithms - %s Distribution Comparison (n=%d)", dataset.GroupClosestPair, dim.Label(), maxSize),
			Table: distributionTable(subset, opts.labelFor),
		})
	}

	prefixes := map[dataset.Group]string{
		dataset.GroupClosestPair: "CP: ",
		dataset.GroupDiameter:    "DM: ",
	}
	for _, dim := range dataset.Dimensions() {
		uniform := aggregate.FilterDistribution(aggregate.FilterDimension(records, dim), uniformDistribution)
		var series []chart.Series
		for _, group := range dataset.Groups() {
			subset := aggregate.FilterGroup(uniform, group)
			if len(subset) == 0 {
				continue
			}
			points, err := aggregate.SpeedupVsBaseline(subset, opts.baselineFor(group))
			if err != nil {
				// A group without its baseline just drops out of the
				// overlay panel; the standalone speedup view reports it.
				continue
			}
			series = append(series, speedupSeries(points, prefixes[group], opts.labelFor)...)
		}
		data.Speedups = append(data.Speedups, chart.TitledSeries{
			Title:  fmt.Sprintf("%s Algorithm Speedup vs Naive (%s)", dim.Label(), uniformDistribution),
			Series: series,
		})
	}

	return data
}
