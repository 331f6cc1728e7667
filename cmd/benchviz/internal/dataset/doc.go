// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dataset loads and models point-cloud benchmark measurements.
//
// A benchmark CSV holds one row per measurement: algorithm identifier,
// dimension (TWO_D/THREE_D), input size, point distribution, execution
// time in milliseconds, and memory usage in megabytes. The package
// parses those rows into immutable Record values and exposes the
// derived labels (algorithm group, family, variant, display name)
// every downstream view needs.
//
// # Pipeline position
//
//	discover/load (this package) -> aggregate -> views -> chart
//
// # Error taxonomy
//
// Loading distinguishes four failure classes so callers can decide
// what is fatal:
//
//   - ErrNoBenchmarkFiles: discovery matched nothing
//   - *SchemaError: a required column is missing from the header
//   - *CoercionError: a cell failed numeric parsing
//   - *DomainError: a parsed value violates a record invariant
//
// All loading errors are fatal to a render run; nothing downstream
// sees a partially loaded dataset.
package dataset
