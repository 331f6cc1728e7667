// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/benchviz/cmd/benchviz/config"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/chart"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/views"
	"github.com/AleutianAI/benchviz/pkg/ux"
)

// debounceWindow coalesces bursts of filesystem events in watch mode.
// Benchmark runners write CSVs incrementally, so the first Write event
// usually arrives well before the file is complete.
const debounceWindow = 500 * time.Millisecond

// runRender is the entry point for `benchviz render`.
func runRender(cmd *cobra.Command, args []string) {
	start := time.Now()
	out := OutputConfig{JSON: jsonOut, Quiet: quietOut}

	for _, name := range onlyViews {
		if !views.KnownView(name) {
			OutputError(jsonOut, "unknown view", fmt.Errorf("%q is not a view, run `benchviz views`", name))
			os.Exit(CLIExitError)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchMode {
		if err := watchAndRender(ctx); err != nil && ctx.Err() == nil {
			OutputError(jsonOut, "watch failed", err)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	result, err := renderWithSpinner(ctx)
	hasFindings := result != nil && len(result.Skipped) > 0
	if !jsonOut && !quietOut && err == nil {
		printRenderResult(result)
	}
	os.Exit(OutputResult(out, "render", start, result, hasFindings, err))
}

// renderWithSpinner runs one render cycle behind a progress spinner.
// Machine-readable and quiet modes render without one.
func renderWithSpinner(ctx context.Context) (*RenderResult, error) {
	if jsonOut || quietOut {
		return renderOnce(ctx)
	}
	spin := ux.NewSpinner("rendering charts")
	spin.Start()
	result, err := renderOnce(ctx)
	spin.Stop()
	return result, err
}

// renderOnce runs the full pipeline: discover, load, render, manifest.
func renderOnce(ctx context.Context) (*RenderResult, error) {
	cfg := config.Global

	source := inputPath
	if source == "" {
		dir := firstNonEmpty(dataDir, cfg.Data.Dir)
		pattern := firstNonEmpty(filePattern, cfg.Data.Pattern)
		found, err := dataset.DiscoverLatest(dir, pattern)
		if err != nil {
			return nil, err
		}
		source = found
		appLogger.Info("discovered benchmark file", "path", source)
	}

	records, err := dataset.Load(source)
	if err != nil {
		return nil, err
	}
	appLogger.Info("dataset loaded", "path", source, "rows", len(records))

	outputDir := firstNonEmpty(outDir, cfg.Output.Dir)
	opts := views.Options{
		OutDir:    outputDir,
		Only:      onlyViews,
		Baselines: configBaselines(cfg.Baselines),
		Labels:    cfg.DisplayNames,
		Parallel:  parallelRun,
	}
	renderer := chart.NewPNG(cfg.Charts.WidthInches, cfg.Charts.HeightInches)
	runner := views.NewRunner(renderer, opts, appLogger)

	report, err := runner.Run(ctx, records)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{
		RunID:     uuid.NewString(),
		Source:    source,
		Rows:      len(records),
		OutputDir: outputDir,
		Written:   report.Written,
	}
	for _, s := range report.Skipped {
		result.Skipped = append(result.Skipped, SkippedChart{View: s.View, Path: s.Path, Reason: s.Reason})
	}

	if (htmlOut || cfg.Output.HTML) && opts.Wants(views.ViewDashboard) {
		htmlPath := filepath.Join(outputDir, "performance_dashboard.html")
		if err := chart.HTMLDashboard(htmlPath, views.BuildDashboard(records, opts)); err != nil {
			appLogger.Warn("html dashboard failed", "path", htmlPath, "error", err.Error())
			result.Skipped = append(result.Skipped, SkippedChart{
				View: views.ViewDashboard, Path: htmlPath, Reason: err.Error(),
			})
		} else {
			result.Written = append(result.Written, htmlPath)
		}
	}

	if err := writeManifest(outputDir, result); err != nil {
		appLogger.Warn("manifest not written", "error", err.Error())
	}

	appLogger.Info("render complete",
		"run_id", result.RunID,
		"written", len(result.Written),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// watchAndRender renders once, then re-renders whenever a matching
// benchmark CSV changes in the data directory. Render failures are
// logged and the watch continues; only watcher failures or ctx
// cancellation end the loop.
func watchAndRender(ctx context.Context) error {
	dir := firstNonEmpty(dataDir, config.Global.Data.Dir)
	pattern := firstNonEmpty(filePattern, config.Global.Data.Pattern)

	watchRender(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	ux.Info(fmt.Sprintf("watching %s for %s (Ctrl-C to stop)", dir, pattern))

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if match, _ := filepath.Match(pattern, filepath.Base(event.Name)); !match {
				continue
			}
			appLogger.Debug("benchmark file changed", "path", event.Name, "op", event.Op.String())
			if pending {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
			}
			debounce.Reset(debounceWindow)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("watcher error", "error", err.Error())
		case <-debounce.C:
			pending = false
			watchRender(ctx)
		}
	}
}

// watchRender is one render cycle inside the watch loop.
func watchRender(ctx context.Context) {
	result, err := renderWithSpinner(ctx)
	if err != nil {
		appLogger.Error("render failed", "error", err.Error())
		ux.Error(fmt.Sprintf("render failed: %v", err))
		return
	}
	if !quietOut {
		printRenderResult(result)
	}
}

// printRenderResult writes the human-readable run summary.
func printRenderResult(result *RenderResult) {
	ux.Title(fmt.Sprintf("benchviz render %s", result.RunID))
	ux.Info(fmt.Sprintf("source: %s (%d rows)", result.Source, result.Rows))
	for _, path := range result.Written {
		ux.FileStatus(path, ux.IconSuccess, "")
	}
	for _, s := range result.Skipped {
		ux.FileStatus(s.Path, ux.IconWarning, s.Reason)
	}
	ux.Summary(len(result.Written), len(result.Skipped), len(result.Written)+len(result.Skipped))
}

// writeManifest records what a run produced next to the charts, so
// downstream tooling can pick up exactly this run's files.
func writeManifest(outputDir string, result *RenderResult) error {
	manifest := struct {
		RunID       string         `json:"run_id"`
		GeneratedAt time.Time      `json:"generated_at"`
		Source      string         `json:"source"`
		Rows        int            `json:"rows"`
		Written     []string       `json:"written"`
		Skipped     []SkippedChart `json:"skipped,omitempty"`
	}{
		RunID:       result.RunID,
		GeneratedAt: time.Now().UTC(),
		Source:      result.Source,
		Rows:        result.Rows,
		Written:     result.Written,
		Skipped:     result.Skipped,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "manifest.json"), data, 0644)
}

// configBaselines converts config's group-name keys to dataset groups.
func configBaselines(raw map[string]string) map[dataset.Group]string {
	if len(raw) == 0 {
		return nil
	}
	baselines := make(map[dataset.Group]string, len(raw))
	for name, id := range raw {
		baselines[dataset.Group(name)] = id
	}
	return baselines
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
