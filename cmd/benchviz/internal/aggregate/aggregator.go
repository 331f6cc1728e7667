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
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/dataset"
)

// Field selects the numeric record field a reduction runs over.
type Field int

const (
	FieldExecutionMs Field = iota
	FieldMemoryMB
)

// value extracts the selected field from a record.
func (f Field) value(r dataset.Record) float64 {
	if f == FieldMemoryMB {
		return r.MemoryMB
	}
	return r.ExecutionMs
}

// Keys selects which record fields participate in a grouping.
type Keys struct {
	Algorithm    bool
	Dimension    bool
	Size         bool
	Distribution bool
}

// Key identifies one group. Fields not selected by the grouping Keys
// stay at their zero value.
type Key struct {
	Algorithm    string
	Dimension    dataset.Dimension
	Size         int
	Distribution string
}

// Aggregate is one group's mean.
type Aggregate struct {
	Key   Key
	Mean  float64
	Count int
}

// MeanBy groups records by the selected keys and reduces the chosen
// field to its mean.
//
// # Description
//
// The result is a slice rather than a map so the deterministic
// ordering travels with the data: ascending size, then the fixed
// algorithm order, then dimension, then distribution. Groups with no
// records simply do not appear.
func MeanBy(records []dataset.Record, by Keys, field Field) []Aggregate {
	groups := make(map[Key][]float64)
	for _, r := range records {
		groups[keyFor(r, by)] = append(groups[keyFor(r, by)], field.value(r))
	}

	out := make([]Aggregate, 0, len(groups))
	for k, values := range groups {
		out = append(out, Aggregate{
			Key:   k,
			Mean:  stat.Mean(values, nil),
			Count: len(values),
		})
	}
	sortAggregates(out)
	return out
}

func keyFor(r dataset.Record, by Keys) Key {
	var k Key
	if by.Algorithm {
		k.Algorithm = r.Algorithm
	}
	if by.Dimension {
		k.Dimension = r.Dimension
	}
	if by.Size {
		k.Size = r.Size
	}
	if by.Distribution {
		k.Distribution = r.Distribution
	}
	return k
}

func sortAggregates(aggs []Aggregate) {
	sort.Slice(aggs, func(i, j int) bool {
		a, b := aggs[i].Key, aggs[j].Key
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		ra, rb := dataset.AlgorithmRank(a.Algorithm), dataset.AlgorithmRank(b.Algorithm)
		if ra != rb {
			return ra < rb
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		return a.Distribution < b.Distribution
	})
}

// MaxSize returns the largest size present across the whole dataset
// (not per group). ok is false for an empty dataset.
func MaxSize(records []dataset.Record) (int, bool) {
	if len(records) == 0 {
		return 0, false
	}
	max := records[0].Size
	for _, r := range records[1:] {
		if r.Size > max {
			max = r.Size
		}
	}
	return max, true
}

// FilterMaxSize restricts records to the globally maximum size. An
// empty input yields an empty result, not an error.
func FilterMaxSize(records []dataset.Record) []dataset.Record {
	max, ok := MaxSize(records)
	if !ok {
		return nil
	}
	return filter(records, func(r dataset.Record) bool { return r.Size == max })
}

// FilterDistribution restricts records to one distribution.
func FilterDistribution(records []dataset.Record, distribution string) []dataset.Record {
	return filter(records, func(r dataset.Record) bool { return r.Distribution == distribution })
}

// FilterDimension restricts records to one dimension.
func FilterDimension(records []dataset.Record, dim dataset.Dimension) []dataset.Record {
	return filter(records, func(r dataset.Record) bool { return r.Dimension == dim })
}

// FilterGroup restricts records to one algorithm group.
func FilterGroup(records []dataset.Record, group dataset.Group) []dataset.Record {
	return filter(records, func(r dataset.Record) bool { return r.Group() == group })
}

// FilterAlgorithm restricts records to one algorithm identifier.
func FilterAlgorithm(records []dataset.Record, id string) []dataset.Record {
	return filter(records, func(r dataset.Record) bool { return r.Algorithm == id })
}

func filter(records []dataset.Record, keep func(dataset.Record) bool) []dataset.Record {
	var out []dataset.Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Algorithms returns the distinct algorithm identifiers present, in
// the fixed render order.
func Algorithms(records []dataset.Record) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range records {
		if !seen[r.Algorithm] {
			seen[r.Algorithm] = true
			ids = append(ids, r.Algorithm)
		}
	}
	return dataset.SortAlgorithms(ids)
}

// Distributions returns the distinct distributions present, sorted.
func Distributions(records []dataset.Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.Distribution] {
			seen[r.Distribution] = true
			names = append(names, r.Distribution)
		}
	}
	sort.Strings(names)
	return names
}

// Sizes returns the distinct sizes present, ascending.
func Sizes(records []dataset.Record) []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, r := range records {
		if !seen[r.Size] {
			seen[r.Size] = true
			sizes = append(sizes, r.Size)
		}
	}
	sort.Ints(sizes)
	return sizes
}
