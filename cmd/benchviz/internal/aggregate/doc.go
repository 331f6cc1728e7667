// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package aggregate turns raw benchmark records into plot-ready tables.
//
// All operations are stateless transforms over an immutable record
// slice: grouping with mean reduction, subset filters, and baseline
// speedup ratios. Every view recomputes its own aggregation from the
// same records, so views never share mutable state and may run
// concurrently.
//
// Results carry a deterministic ordering (ascending size, then the
// fixed algorithm order, then dimension, then distribution) so that
// repeated runs on identical input render identical charts. A group
// with no matching records is absent from a result, never a zero
// entry, and permuting the input rows changes nothing.
package aggregate
