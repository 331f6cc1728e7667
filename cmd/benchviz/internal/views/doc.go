// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package views turns a loaded benchmark dataset into chart files.
//
// A view is one family of charts: time complexity, distribution
// comparison, memory usage, dimension comparison, heatmap, speedup,
// and the composite dashboard. Each view fans out over the dimensions,
// algorithm groups, and distributions present in the data, producing
// one file per combination. Combinations with no records are skipped,
// never rendered empty.
//
// The Runner owns failure policy: a view that fails to compute or
// render is logged, its partial output file removed, and the run
// continues with the remaining views. One bad slice of the dataset
// does not cost the whole run.
package views
