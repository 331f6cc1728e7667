// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package chart renders prepared benchmark tables to image files.
//
// The package is a pure rendering collaborator: it consumes tables
// the aggregate package already ordered deterministically and writes
// one file per call. It never filters, groups, or reorders data, so a
// chart is fully determined by its inputs.
//
// PNG output uses gonum/plot; the optional interactive dashboard uses
// go-echarts.
package chart
