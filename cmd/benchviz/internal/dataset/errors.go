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
	"fmt"
)

// Sentinel errors for dataset loading.
var (
	// ErrNoBenchmarkFiles means discovery matched zero files. The
	// caller gets this instead of a silent hard-coded fallback path.
	ErrNoBenchmarkFiles = errors.New("no benchmark files match pattern")

	// ErrInputNotFound means an explicitly requested input path does
	// not resolve to an existing file.
	ErrInputNotFound = errors.New("benchmark input file not found")

	// ErrEmptyDataset means the CSV parsed cleanly but held no rows.
	ErrEmptyDataset = errors.New("benchmark file contains no records")
)

// SchemaError reports required columns missing from the CSV header.
type SchemaError struct {
	Path    string
	Missing []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns %v", e.Path, e.Missing)
}

// CoercionError reports a cell that failed numeric parsing.
type CoercionError struct {
	Path   string
	Row    int // 1-based CSV line number, header is row 1
	Column string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s:%d: column %s: cannot parse %q: %v",
		e.Path, e.Row, e.Column, e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// DomainError reports a value that parsed but violates a record
// invariant (non-positive size, negative time, unknown dimension).
type DomainError struct {
	Row    int // 0 when the error is not tied to a specific row
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: field %s: %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}
