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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/benchviz/cmd/benchviz/config"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/aggregate"
	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
	"github.com/AleutianAI/benchviz/pkg/ux"
)

// runInspect is the entry point for `benchviz inspect`. It loads and
// validates a benchmark CSV and reports what a render would see,
// without writing any charts.
func runInspect(cmd *cobra.Command, args []string) {
	start := time.Now()
	out := OutputConfig{JSON: jsonOut, Quiet: quietOut}

	source := inputPath
	if source == "" {
		dir := firstNonEmpty(dataDir, config.Global.Data.Dir)
		pattern := firstNonEmpty(filePattern, config.Global.Data.Pattern)
		found, err := dataset.DiscoverLatest(dir, pattern)
		if err != nil {
			os.Exit(OutputResult(out, "inspect", start, nil, false, err))
		}
		source = found
	}

	records, err := dataset.Load(source)
	if err != nil {
		os.Exit(OutputResult(out, "inspect", start, nil, false, err))
	}

	result := &InspectResult{
		Source:        source,
		Rows:          len(records),
		Algorithms:    aggregate.Algorithms(records),
		Distributions: aggregate.Distributions(records),
		Sizes:         aggregate.Sizes(records),
	}
	for _, dim := range dataset.Dimensions() {
		if len(aggregate.FilterDimension(records, dim)) > 0 {
			result.Dimensions = append(result.Dimensions, dim.Label())
		}
	}

	if !jsonOut && !quietOut {
		printInspectResult(records, result)
	}
	os.Exit(OutputResult(out, "inspect", start, result, false, nil))
}

func printInspectResult(records []dataset.Record, result *InspectResult) {
	ux.Title(fmt.Sprintf("benchviz inspect %s", result.Source))
	ux.Info(fmt.Sprintf("rows: %d", result.Rows))
	ux.Info(fmt.Sprintf("dimensions: %s", strings.Join(result.Dimensions, ", ")))
	ux.Info(fmt.Sprintf("distributions: %s", strings.Join(result.Distributions, ", ")))
	ux.Info(fmt.Sprintf("sizes: %v", result.Sizes))
	for _, id := range result.Algorithms {
		count := len(aggregate.FilterAlgorithm(records, id))
		ux.FileStatus(fmt.Sprintf("%s (%s)", dataset.DisplayNameFor(id), id),
			ux.IconBullet, fmt.Sprintf("%d rows, %s", count, dataset.GroupForAlgorithm(id)))
	}
}
