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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/benchviz/cmd/benchviz/config"
	"github.com/AleutianAI/benchviz/pkg/logging"
	"github.com/AleutianAI/benchviz/pkg/ux"
)

// --- Global Command Variables ---
var (
	inputPath   string   // explicit benchmark CSV (skips discovery)
	dataDir     string   // discovery directory override
	filePattern string   // discovery glob override
	outDir      string   // chart output directory override
	onlyViews   []string // restrict the run to named views
	htmlOut     bool     // also write the interactive HTML dashboard
	parallelRun bool     // render chart files concurrently
	watchMode   bool     // re-render whenever new benchmark CSVs land
	jsonOut     bool     // machine-readable output on stdout
	quietOut    bool     // exit code only
	plainOut    bool     // disable styled terminal output
	configPath  string   // alternate config file
	logLevel    string   // log level override

	appLogger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "benchviz",
		Short: "Render benchmark CSVs into performance charts",
		Long: `Benchviz loads point-cloud algorithm benchmark results from CSV
				and renders complexity curves, distribution comparisons, memory
				profiles, heatmaps, speedup charts, and a composite dashboard.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if plainOut || jsonOut {
				ux.SetPlain(true)
			}
			if err := loadConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
				os.Exit(CLIExitError)
			}
			level := config.Global.Logging.Level
			if logLevel != "" {
				level = logLevel
			}
			appLogger = logging.New(logging.Config{
				Level:   logging.ParseLevel(level),
				LogDir:  config.Global.Logging.Dir,
				Service: "benchviz",
				Quiet:   jsonOut, // keep stdout JSON clean of stderr noise in pipelines
			})
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render all chart views from the newest benchmark CSV",
		Run:   runRender, // Defined in cmd_render.go
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a benchmark CSV without rendering anything",
		Run:   runInspect, // Defined in cmd_inspect.go
	}

	viewsCmd = &cobra.Command{
		Use:   "views",
		Short: "List the available chart views",
		Run:   runViews, // Defined in cmd_views.go
	}
)

// loadConfig loads the global config, honoring --config.
func loadConfig() error {
	if configPath != "" {
		return config.LoadFrom(configPath, &config.Global)
	}
	return config.Load()
}

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to an alternate config file (default ~/.benchviz/benchviz.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, or error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Emit machine-readable JSON on stdout")
	rootCmd.PersistentFlags().BoolVarP(&quietOut, "quiet", "q", false,
		"Suppress output, communicate via exit code only")
	rootCmd.PersistentFlags().BoolVar(&plainOut, "plain", false,
		"Disable styled terminal output")

	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Benchmark CSV to render; skips newest-file discovery")
	renderCmd.Flags().StringVar(&dataDir, "data-dir", "",
		"Directory to discover benchmark CSVs in (overrides config)")
	renderCmd.Flags().StringVar(&filePattern, "pattern", "",
		"Glob for benchmark CSV discovery (overrides config)")
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "",
		"Directory to write charts into (overrides config)")
	renderCmd.Flags().StringSliceVar(&onlyViews, "only", nil,
		"Render only the named views (see `benchviz views`)")
	renderCmd.Flags().BoolVar(&htmlOut, "html", false,
		"Also write an interactive performance_dashboard.html")
	renderCmd.Flags().BoolVar(&parallelRun, "parallel", false,
		"Render chart files concurrently")
	renderCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Keep running and re-render when new benchmark CSVs appear")

	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Benchmark CSV to inspect; skips newest-file discovery")
	inspectCmd.Flags().StringVar(&dataDir, "data-dir", "",
		"Directory to discover benchmark CSVs in (overrides config)")
	inspectCmd.Flags().StringVar(&filePattern, "pattern", "",
		"Glob for benchmark CSV discovery (overrides config)")

	rootCmd.AddCommand(viewsCmd)
}
