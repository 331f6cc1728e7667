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

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestCreateDefault verifies default config creation.
func TestCreateDefault(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".benchviz", "benchviz.yaml")

	if err := createDefault(configPath); err != nil {
		t.Fatalf("createDefault() failed: %v", err)
	}

	// Verify the file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	// Read and verify the config
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	var cfg BenchvizConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	// Verify some defaults
	if cfg.Data.Pattern != "benchmark_comprehensive_*.csv" {
		t.Errorf("Data.Pattern = %q, want %q", cfg.Data.Pattern, "benchmark_comprehensive_*.csv")
	}
	if cfg.Output.Dir != "benchmark_charts" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "benchmark_charts")
	}
	if cfg.Charts.WidthInches != 12 || cfg.Charts.HeightInches != 8 {
		t.Errorf("Charts = %+v, want 12x8", cfg.Charts)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

// TestCreateDefault_DirectoryCreation verifies directory is created.
func TestCreateDefault_DirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "deep", "nested", "path", "benchviz.yaml")

	if err := createDefault(configPath); err != nil {
		t.Fatalf("createDefault() failed with nested path: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(configPath)); os.IsNotExist(err) {
		t.Fatal("config directory was not created")
	}
}

// TestLoadFrom_RoundTrip verifies a created default passes validation.
func TestLoadFrom_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "benchviz.yaml")

	if err := createDefault(configPath); err != nil {
		t.Fatalf("createDefault() failed: %v", err)
	}

	var cfg BenchvizConfig
	if err := LoadFrom(configPath, &cfg); err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Data.Dir != "." {
		t.Errorf("Data.Dir = %q, want .", cfg.Data.Dir)
	}
}

// TestLoadFrom_Overrides verifies user values survive the round trip.
func TestLoadFrom_Overrides(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "benchviz.yaml")

	content := `
data:
  dir: results
  pattern: "run_*.csv"
output:
  dir: charts
  html: true
charts:
  width_inches: 10
  height_inches: 6
logging:
  level: debug
baselines:
  Diameter: DIAMETER_QUICKHULL
display_names:
  CLOSEST_PAIR_KDTREE: "k-d tree"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg BenchvizConfig
	if err := LoadFrom(configPath, &cfg); err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Data.Dir != "results" || cfg.Data.Pattern != "run_*.csv" {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if !cfg.Output.HTML {
		t.Error("Output.HTML = false, want true")
	}
	if cfg.Baselines["Diameter"] != "DIAMETER_QUICKHULL" {
		t.Errorf("Baselines = %v", cfg.Baselines)
	}
	if cfg.DisplayNames["CLOSEST_PAIR_KDTREE"] != "k-d tree" {
		t.Errorf("DisplayNames = %v", cfg.DisplayNames)
	}
}

// TestLoadFrom_PartialConfig verifies a minimal hand-written config
// loads with the omitted fields defaulted rather than rejected.
func TestLoadFrom_PartialConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "benchviz.yaml")

	content := `
data: {dir: ".", pattern: "*.csv"}
output: {dir: charts}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg BenchvizConfig
	if err := LoadFrom(configPath, &cfg); err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Charts.WidthInches != 12 || cfg.Charts.HeightInches != 8 {
		t.Errorf("Charts = %+v, want 12x8", cfg.Charts)
	}
}

// TestLoadFrom_Invalid verifies validation rejects bad values.
func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "negative chart size",
			content: `
data: {dir: ".", pattern: "*.csv"}
output: {dir: charts}
charts: {width_inches: -1, height_inches: 8}
logging: {level: info}
`,
		},
		{
			name: "bad log level",
			content: `
data: {dir: ".", pattern: "*.csv"}
output: {dir: charts}
charts: {width_inches: 12, height_inches: 8}
logging: {level: loud}
`,
		},
		{
			name: "missing output dir",
			content: `
data: {dir: ".", pattern: "*.csv"}
output: {html: true}
charts: {width_inches: 12, height_inches: 8}
logging: {level: info}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "benchviz.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			var cfg BenchvizConfig
			if err := LoadFrom(configPath, &cfg); err == nil {
				t.Error("LoadFrom() = nil, want validation error")
			}
		})
	}
}

// TestLoadFrom_MissingFile verifies a clear error for a bad path.
func TestLoadFrom_MissingFile(t *testing.T) {
	var cfg BenchvizConfig
	if err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Error("LoadFrom() = nil, want error for missing file")
	}
}
