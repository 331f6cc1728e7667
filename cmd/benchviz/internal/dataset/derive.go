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
	"math"
	"sort"
	"strings"
)

// closestPairMarker decides group membership: any identifier that
// contains it is a closest-pair algorithm, everything else measures
// the diameter problem.
const closestPairMarker = "CLOSEST_PAIR"

// minLoggableMs floors non-positive execution times before a log10
// transform. A 0ms measurement is timer-resolution noise, not a real
// zero, so views get a floor instead of -Inf.
const minLoggableMs = 1e-6

// displayNames maps algorithm identifiers to friendly chart labels.
// Read-only after process start; unknown identifiers fall back to the
// raw id.
var displayNames = map[string]string{
	"CLOSEST_PAIR_NAIVE":     "Naive O(n²)",
	"CLOSEST_PAIR_EFFICIENT": "Divide & Conquer",
	"CLOSEST_PAIR_KDTREE":    "KD-Tree",
	"CLOSEST_PAIR_ADAPTIVE":  "Adaptive",
	"DIAMETER_NAIVE":         "Naive O(n²)",
	"DIAMETER_CONCURRENT":    "Concurrent",
	"DIAMETER_QUICKHULL":     "QuickHull",
}

// algorithmOrder fixes the series ordering used by every view so that
// identical inputs always render identical charts.
var algorithmOrder = []string{
	"CLOSEST_PAIR_NAIVE",
	"CLOSEST_PAIR_EFFICIENT",
	"CLOSEST_PAIR_KDTREE",
	"CLOSEST_PAIR_ADAPTIVE",
	"DIAMETER_NAIVE",
	"DIAMETER_CONCURRENT",
	"DIAMETER_QUICKHULL",
}

// Group returns the coarse algorithm category.
func (r Record) Group() Group {
	return GroupForAlgorithm(r.Algorithm)
}

// GroupForAlgorithm classifies a raw identifier.
func GroupForAlgorithm(id string) Group {
	if strings.Contains(id, closestPairMarker) {
		return GroupClosestPair
	}
	return GroupDiameter
}

// Family returns the identifier minus its trailing variant suffix,
// e.g. CLOSEST_PAIR_KDTREE -> CLOSEST_PAIR.
func (r Record) Family() string {
	idx := strings.LastIndex(r.Algorithm, "_")
	if idx <= 0 {
		return r.Algorithm
	}
	return r.Algorithm[:idx]
}

// Variant returns the trailing suffix after the last underscore,
// e.g. CLOSEST_PAIR_KDTREE -> KDTREE.
func (r Record) Variant() string {
	idx := strings.LastIndex(r.Algorithm, "_")
	if idx < 0 || idx == len(r.Algorithm)-1 {
		return r.Algorithm
	}
	return r.Algorithm[idx+1:]
}

// DisplayName returns the friendly label for the record's algorithm,
// or the raw identifier when no label is registered.
func (r Record) DisplayName() string {
	return DisplayNameFor(r.Algorithm)
}

// DisplayNameFor resolves a friendly label for a raw identifier.
// The fallback is idempotent: unknown ids map to themselves.
func DisplayNameFor(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return id
}

// LogExecutionTime returns log10 of the record's execution time.
// Computed lazily by the views that need it, never stored on the
// record. Times at or below zero are floored to minLoggableMs.
func LogExecutionTime(r Record) float64 {
	ms := r.ExecutionMs
	if ms <= 0 {
		ms = minLoggableMs
	}
	return math.Log10(ms)
}

// AlgorithmRank returns the fixed sort position of an identifier.
// Unknown identifiers sort after all known ones, alphabetically, so
// ordering stays total and deterministic for open-ended inputs.
func AlgorithmRank(id string) int {
	for i, known := range algorithmOrder {
		if known == id {
			return i
		}
	}
	return len(algorithmOrder)
}

// SortAlgorithms orders identifiers by AlgorithmRank, breaking ties
// (unknown ids) alphabetically. The slice is sorted in place and
// returned for convenience.
func SortAlgorithms(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := AlgorithmRank(ids[i]), AlgorithmRank(ids[j])
		if ri != rj {
			return ri < rj
		}
		return ids[i] < ids[j]
	})
	return ids
}
