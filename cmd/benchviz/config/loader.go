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
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// Global is a singleton instance
	Global BenchvizConfig
	once   sync.Once

	validate = validator.New()
)

// Load ensures the config is loaded into the Global variable
func Load() error {
	var err error
	once.Do(func() {
		err = loadInternal()
	})
	return err
}

func loadInternal() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find the user's home directory: %w", err)
	}
	configPath := filepath.Join(home, ".benchviz", "benchviz.yaml")
	// create it if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf(" First run detected, creating the config at %s\n", configPath)
		if err := createDefault(configPath); err != nil {
			return err
		}
	}
	return LoadFrom(configPath, &Global)
}

// LoadFrom reads and validates a config file into cfg. Split out of
// the singleton path so tests and --config can point at any file.
func LoadFrom(path string, cfg *BenchvizConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse the config file: %w", err)
	}
	if err = validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return nil
}

// applyDefaults fills fields a hand-written config may omit. Only
// fields with an unambiguous zero value are defaulted; data and output
// paths stay required.
func applyDefaults(cfg *BenchvizConfig) {
	def := DefaultConfig()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Charts.WidthInches == 0 {
		cfg.Charts.WidthInches = def.Charts.WidthInches
	}
	if cfg.Charts.HeightInches == 0 {
		cfg.Charts.HeightInches = def.Charts.HeightInches
	}
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	defaultCfg := DefaultConfig()
	data, err := yaml.Marshal(defaultCfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
