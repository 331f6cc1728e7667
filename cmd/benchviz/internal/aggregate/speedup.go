// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package aggregate

import (
	"fmt"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
)

// SpeedupPoint is one (algorithm, size) speedup ratio: the baseline's
// mean execution time divided by the candidate's. Above 1.0 the
// candidate beats the baseline.
type SpeedupPoint struct {
	Algorithm string
	Size      int
	Ratio     float64
}

// SpeedupVsBaseline computes speedup ratios relative to a baseline
// algorithm.
//
// # Description
//
// Mean execution time is computed per (algorithm, size), then each
// candidate algorithm is joined inner against the baseline on size:
// a size with no baseline observation is dropped from that
// candidate's result, never divided against a sentinel. The baseline
// itself is excluded from the output; its ratio is 1.0 by definition
// and the rendered charts mark it with a reference line instead.
//
// # Outputs
//
//   - []SpeedupPoint: Deterministically ordered (size, then fixed
//     algorithm order).
//   - error: *dataset.DomainError when the baseline has no
//     observations at all in the given records.
func SpeedupVsBaseline(records []dataset.Record, baseline string) ([]SpeedupPoint, error) {
	means := MeanBy(records, Keys{Algorithm: true, Size: true}, FieldExecutionMs)

	baselineBySize := make(map[int]float64)
	for _, agg := range means {
		if agg.Key.Algorithm == baseline {
			baselineBySize[agg.Key.Size] = agg.Mean
		}
	}
	if len(baselineBySize) == 0 {
		return nil, &dataset.DomainError{
			Field:  "baseline",
			Reason: fmt.Sprintf("algorithm %s has no observations", baseline),
		}
	}

	var points []SpeedupPoint
	for _, agg := range means {
		if agg.Key.Algorithm == baseline {
			continue
		}
		base, ok := baselineBySize[agg.Key.Size]
		if !ok {
			continue // inner join on size
		}
		if agg.Mean <= 0 {
			// A zero-mean candidate would make the ratio infinite;
			// treat it like a missing observation.
			continue
		}
		points = append(points, SpeedupPoint{
			Algorithm: agg.Key.Algorithm,
			Size:      agg.Key.Size,
			Ratio:     base / agg.Mean,
		})
	}
	return points, nil
}
