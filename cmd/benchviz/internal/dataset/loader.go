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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/benchviz/pkg/validation"
)

// Required CSV columns, by exact header name.
const (
	ColAlgorithm    = "Algorithm"
	ColDimension    = "Dimension"
	ColSize         = "Size"
	ColDistribution = "Distribution"
	ColExecutionMs  = "ExecutionTime(ms)"
	ColMemoryMB     = "MemoryUsage(MB)"
)

// DefaultPattern matches the benchmark runner's output files.
const DefaultPattern = "benchmark_comprehensive_*.csv"

// recordValidate enforces Record invariants at load time.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New()
	_ = recordValidate.RegisterValidation("algorithm_id", func(fl validator.FieldLevel) bool {
		return validation.ValidateAlgorithmID(fl.Field().String()) == nil
	})
	// Distributions end up in output filenames, so they get the same
	// identifier grammar as algorithm ids.
	_ = recordValidate.RegisterValidation("distribution", func(fl validator.FieldLevel) bool {
		return validation.ValidateDistribution(fl.Field().String()) == nil
	})
}

// DiscoverLatest finds the most recently modified benchmark CSV in
// dir matching pattern (DefaultPattern when empty).
//
// # Outputs
//
//   - string: Path of the newest matching file.
//   - error: ErrNoBenchmarkFiles when nothing matches; there is no
//     fallback path.
func DiscoverLatest(dir, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad benchmark glob %q: %w", pattern, err)
	}
	var latest string
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest, latestMod = m, mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: %s in %s", ErrNoBenchmarkFiles, pattern, dir)
	}
	return latest, nil
}

// Load parses the benchmark CSV at path into records.
//
// # Description
//
// The header row is matched by exact column name; extra columns are
// ignored. Numeric cells are coerced with strconv, and every parsed
// record is checked against the Record invariants. Any failure aborts
// the load: callers never see a partially valid dataset.
//
// # Outputs
//
//   - []Record: All rows, in file order.
//   - error: ErrInputNotFound, *SchemaError, *CoercionError, or
//     *DomainError.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open benchmark file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	cols, missing := indexColumns(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	var records []Record
	row := 1 // header
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		row++

		rec, err := parseRecord(path, row, cols, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	return records, nil
}

// indexColumns maps required column names to their header positions.
func indexColumns(header []string) (map[string]int, []string) {
	required := []string{
		ColAlgorithm, ColDimension, ColSize,
		ColDistribution, ColExecutionMs, ColMemoryMB,
	}
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}
	cols := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		idx, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = idx
	}
	return cols, missing
}

func parseRecord(path string, row int, cols map[string]int, fields []string) (Record, error) {
	cell := func(name string) string {
		idx := cols[name]
		if idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	size, err := strconv.Atoi(cell(ColSize))
	if err != nil {
		return Record{}, &CoercionError{Path: path, Row: row, Column: ColSize, Value: cell(ColSize), Err: err}
	}
	execMs, err := strconv.ParseFloat(cell(ColExecutionMs), 64)
	if err != nil {
		return Record{}, &CoercionError{Path: path, Row: row, Column: ColExecutionMs, Value: cell(ColExecutionMs), Err: err}
	}
	memMB, err := strconv.ParseFloat(cell(ColMemoryMB), 64)
	if err != nil {
		return Record{}, &CoercionError{Path: path, Row: row, Column: ColMemoryMB, Value: cell(ColMemoryMB), Err: err}
	}

	rec := Record{
		Algorithm:    cell(ColAlgorithm),
		Dimension:    Dimension(cell(ColDimension)),
		Size:         size,
		Distribution: cell(ColDistribution),
		ExecutionMs:  execMs,
		MemoryMB:     memMB,
	}

	if err := recordValidate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			fe := verrs[0]
			return Record{}, &DomainError{
				Row:    row,
				Field:  fe.Field(),
				Reason: fmt.Sprintf("value %v fails %q", fe.Value(), fe.Tag()),
			}
		}
		return Record{}, &DomainError{Row: row, Field: "record", Reason: err.Error()}
	}
	return rec, nil
}

// asValidationErrors is a small errors.As shim kept separate so the
// parse path reads linearly.
func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
