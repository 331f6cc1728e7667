// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Fixtures
// =============================================================================

const csvHeader = "Algorithm,Dimension,Size,Distribution,ExecutionTime(ms),MemoryUsage(MB)\n"

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// Load
// =============================================================================

func TestLoad_Valid(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "bench.csv", csvHeader+
		"CLOSEST_PAIR_NAIVE,TWO_D,100,UNIFORM,5.5,1.25\n"+
		"DIAMETER_QUICKHULL,THREE_D,1000,CLUSTERED,0.75,2.5\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Algorithm:    "CLOSEST_PAIR_NAIVE",
		Dimension:    DimensionTwoD,
		Size:         100,
		Distribution: "UNIFORM",
		ExecutionMs:  5.5,
		MemoryMB:     1.25,
	}, records[0])
	assert.Equal(t, "DIAMETER_QUICKHULL", records[1].Algorithm)
	assert.Equal(t, DimensionThreeD, records[1].Dimension)
}

func TestLoad_ExtraColumnsIgnored(t *testing.T) {
	header := "RunID,Algorithm,Dimension,Size,Distribution,ExecutionTime(ms),MemoryUsage(MB),Notes\n"
	path := writeCSV(t, t.TempDir(), "bench.csv", header+
		"42,CLOSEST_PAIR_KDTREE,TWO_D,500,UNIFORM,1.0,0.5,warmup\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CLOSEST_PAIR_KDTREE", records[0].Algorithm)
	assert.Equal(t, 500, records[0].Size)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "bench.csv",
		"Algorithm,Size,Distribution\nCLOSEST_PAIR_NAIVE,100,UNIFORM\n")

	_, err := Load(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, ColDimension)
	assert.Contains(t, schemaErr.Missing, ColExecutionMs)
	assert.Contains(t, schemaErr.Missing, ColMemoryMB)
}

func TestLoad_BadNumber(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "bench.csv", csvHeader+
		"CLOSEST_PAIR_NAIVE,TWO_D,100,UNIFORM,5.5,1.25\n"+
		"CLOSEST_PAIR_NAIVE,TWO_D,many,UNIFORM,5.5,1.25\n")

	_, err := Load(path)
	var coercionErr *CoercionError
	require.ErrorAs(t, err, &coercionErr)
	assert.Equal(t, 3, coercionErr.Row) // header is row 1
	assert.Equal(t, ColSize, coercionErr.Column)
	assert.Equal(t, "many", coercionErr.Value)
	assert.NotNil(t, errors.Unwrap(coercionErr))
}

func TestLoad_DomainViolations(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"zero size", "CLOSEST_PAIR_NAIVE,TWO_D,0,UNIFORM,5.5,1.25"},
		{"negative time", "CLOSEST_PAIR_NAIVE,TWO_D,100,UNIFORM,-1,1.25"},
		{"negative memory", "CLOSEST_PAIR_NAIVE,TWO_D,100,UNIFORM,5.5,-1"},
		{"unknown dimension", "CLOSEST_PAIR_NAIVE,FOUR_D,100,UNIFORM,5.5,1.25"},
		{"bad algorithm id", "closest pair,TWO_D,100,UNIFORM,5.5,1.25"},
		{"empty distribution", "CLOSEST_PAIR_NAIVE,TWO_D,100,,5.5,1.25"},
		{"lowercase distribution", "CLOSEST_PAIR_NAIVE,TWO_D,100,uniform,5.5,1.25"},
		// A distribution cell feeds into speedup filenames; a
		// path-like value must never survive the load.
		{"path-like distribution", "CLOSEST_PAIR_NAIVE,TWO_D,100,../../ESCAPE,5.5,1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, t.TempDir(), "bench.csv", csvHeader+tt.row+"\n")
			_, err := Load(path)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, 2, domainErr.Row)
		})
	}
}

func TestLoad_EmptyDataset(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "bench.csv", csvHeader)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

// =============================================================================
// Discovery
// =============================================================================

func TestDiscoverLatest_PicksNewest(t *testing.T) {
	dir := t.TempDir()
	older := writeCSV(t, dir, "benchmark_comprehensive_20250101.csv", csvHeader)
	newer := writeCSV(t, dir, "benchmark_comprehensive_20250201.csv", csvHeader)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	got, err := DiscoverLatest(dir, "")
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestDiscoverLatest_ModTimeNotName(t *testing.T) {
	// A lexically older name with a newer mtime wins: discovery is by
	// modification time, not filename order.
	dir := t.TempDir()
	early := writeCSV(t, dir, "benchmark_comprehensive_a.csv", csvHeader)
	late := writeCSV(t, dir, "benchmark_comprehensive_z.csv", csvHeader)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(late, base, base))
	require.NoError(t, os.Chtimes(early, base.Add(time.Minute), base.Add(time.Minute)))

	got, err := DiscoverLatest(dir, "")
	require.NoError(t, err)
	assert.Equal(t, early, got)
}

func TestDiscoverLatest_NoMatches(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "other_data.csv", csvHeader)

	_, err := DiscoverLatest(dir, "")
	assert.ErrorIs(t, err, ErrNoBenchmarkFiles)
}

func TestDiscoverLatest_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	want := writeCSV(t, dir, "run_7.csv", csvHeader)
	writeCSV(t, dir, "benchmark_comprehensive_1.csv", csvHeader)

	got, err := DiscoverLatest(dir, "run_*.csv")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDiscoverLatest_EmptyDir(t *testing.T) {
	_, err := DiscoverLatest(t.TempDir(), "")
	assert.ErrorIs(t, err, ErrNoBenchmarkFiles)
}
