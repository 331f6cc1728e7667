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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
)

// =============================================================================
// Exit Codes
// =============================================================================

func TestOutputResult_ExitCodes(t *testing.T) {
	quiet := OutputConfig{Quiet: true}
	start := time.Now()

	tests := []struct {
		name        string
		hasFindings bool
		err         error
		want        int
	}{
		{"success", false, nil, CLIExitSuccess},
		{"skipped charts", true, nil, CLIExitFindings},
		{"error", false, errors.New("boom"), CLIExitError},
		{"error outranks findings", true, errors.New("boom"), CLIExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputResult(quiet, "render", start, nil, tt.hasFindings, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// =============================================================================
// Helpers
// =============================================================================

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("a", "b"))
	assert.Equal(t, "b", firstNonEmpty("", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "", firstNonEmpty())
}

func TestConfigBaselines(t *testing.T) {
	assert.Nil(t, configBaselines(nil))

	got := configBaselines(map[string]string{
		"Closest Pair": "CLOSEST_PAIR_KDTREE",
		"Diameter":     "DIAMETER_QUICKHULL",
	})
	assert.Equal(t, "CLOSEST_PAIR_KDTREE", got[dataset.GroupClosestPair])
	assert.Equal(t, "DIAMETER_QUICKHULL", got[dataset.GroupDiameter])
}
