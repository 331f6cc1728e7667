// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type BenchvizConfig struct {
	// Data: where benchmark CSVs are discovered
	Data DataConfig `yaml:"data"`

	// Output: where chart files are written
	Output OutputConfig `yaml:"output"`

	// Charts: canvas sizing for the PNG renderer
	Charts ChartConfig `yaml:"charts"`

	// Logging: level and optional log directory
	Logging LoggingConfig `yaml:"logging"`

	// Baselines: per-group speedup baseline overrides,
	// e.g. "Closest Pair": CLOSEST_PAIR_EFFICIENT
	Baselines map[string]string `yaml:"baselines,omitempty"`

	// DisplayNames: per-algorithm chart label overrides
	DisplayNames map[string]string `yaml:"display_names,omitempty"`
}

type DataConfig struct {
	Dir     string `yaml:"dir" validate:"required"`     // e.g. "." or "results"
	Pattern string `yaml:"pattern" validate:"required"` // e.g. benchmark_comprehensive_*.csv
}

type OutputConfig struct {
	Dir  string `yaml:"dir" validate:"required"` // e.g. benchmark_charts
	HTML bool   `yaml:"html"`                    // also write performance_dashboard.html
}

type ChartConfig struct {
	// Omitted sizes fall back to the 12x8 defaults after load.
	WidthInches  float64 `yaml:"width_inches" validate:"omitempty,gt=0"`  // e.g. 12
	HeightInches float64 `yaml:"height_inches" validate:"omitempty,gt=0"` // e.g. 8
}

type LoggingConfig struct {
	// Level can be "debug", "info", "warn", or "error"; omitted means
	// "info".
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// Dir enables file logging when set, e.g. ~/.benchviz/logs
	Dir string `yaml:"dir,omitempty"`
}

func DefaultConfig() BenchvizConfig {
	return BenchvizConfig{
		Data: DataConfig{
			Dir:     ".",
			Pattern: "benchmark_comprehensive_*.csv",
		},
		Output: OutputConfig{
			Dir:  "benchmark_charts",
			HTML: false,
		},
		Charts: ChartConfig{
			WidthInches:  12,
			HeightInches: 8,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
