// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for values that end up
// in file names and chart labels.
//
// Benchmark CSVs are produced by an external runner, so identifiers
// are validated on load rather than trusted: an algorithm id becomes
// part of an output file path, and a malformed one would let a bad
// CSV write outside the output directory.
package validation

import (
	"fmt"
	"regexp"
)

// idPattern matches benchmark identifiers as the runner emits them:
// uppercase segments joined by underscores, e.g. CLOSEST_PAIR_KDTREE.
var idPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

// ValidateAlgorithmID validates a raw algorithm identifier.
//
// Valid identifiers:
//   - start with an uppercase letter
//   - contain only uppercase letters, digits, and single underscores
//   - are at most 64 characters
//
// Returns an error if the identifier is invalid.
//
// Example:
//
//	if err := validation.ValidateAlgorithmID(id); err != nil {
//	    return nil, fmt.Errorf("invalid algorithm: %w", err)
//	}
//	// Safe to use in an output filename
func ValidateAlgorithmID(id string) error {
	if id == "" {
		return fmt.Errorf("algorithm id cannot be empty")
	}
	if len(id) > 64 {
		return fmt.Errorf("algorithm id too long: %d chars (max 64)", len(id))
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid algorithm id %q (must be uppercase segments joined by underscores)", id)
	}
	return nil
}

// ValidateDistribution validates a distribution name. Distributions
// are open-ended but share the identifier grammar, because a
// distribution becomes part of speedup chart filenames.
func ValidateDistribution(name string) error {
	if name == "" {
		return fmt.Errorf("distribution cannot be empty")
	}
	if !idPattern.MatchString(name) {
		return fmt.Errorf("invalid distribution %q (must be uppercase segments joined by underscores)", name)
	}
	return nil
}
