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

// Dimension is the spatial dimension a benchmark ran in.
type Dimension string

const (
	DimensionTwoD   Dimension = "TWO_D"
	DimensionThreeD Dimension = "THREE_D"
)

// Dimensions lists the known dimensions in fixed render order.
func Dimensions() []Dimension {
	return []Dimension{DimensionTwoD, DimensionThreeD}
}

// Label returns the short human label used in titles and filenames.
func (d Dimension) Label() string {
	switch d {
	case DimensionTwoD:
		return "2D"
	case DimensionThreeD:
		return "3D"
	default:
		return string(d)
	}
}

// Group is the coarse algorithm category.
type Group string

const (
	GroupClosestPair Group = "Closest Pair"
	GroupDiameter    Group = "Diameter"
)

// Groups lists the algorithm groups in fixed render order.
func Groups() []Group {
	return []Group{GroupClosestPair, GroupDiameter}
}

// FileLabel returns the group name without spaces, for filenames.
func (g Group) FileLabel() string {
	switch g {
	case GroupClosestPair:
		return "ClosestPair"
	default:
		return string(g)
	}
}

// Record is one benchmark measurement. Records are immutable after
// load; every derived label is a pure function of the fields.
type Record struct {
	// Algorithm is the benchmark's algorithm identifier,
	// e.g. CLOSEST_PAIR_KDTREE or DIAMETER_QUICKHULL.
	Algorithm string `validate:"required,algorithm_id"`

	// Dimension the points lived in.
	Dimension Dimension `validate:"required,oneof=TWO_D THREE_D"`

	// Size is the number of input points.
	Size int `validate:"gt=0"`

	// Distribution is the statistical shape of the generated point
	// set (UNIFORM, CLUSTERED, ...). Open-ended: new generators may
	// introduce new values without a schema change, but they must
	// follow the identifier grammar because the value becomes part of
	// speedup chart filenames.
	Distribution string `validate:"required,distribution"`

	// ExecutionMs is the measured wall time in milliseconds.
	ExecutionMs float64 `validate:"gte=0"`

	// MemoryMB is the measured memory usage in megabytes.
	MemoryMB float64 `validate:"gte=0"`
}
