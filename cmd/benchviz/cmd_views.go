// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/benchviz/cmd/benchviz/internal/views"
	"github.com/AleutianAI/benchviz/pkg/ux"
)

// runViews lists the registered chart views.
func runViews(cmd *cobra.Command, args []string) {
	start := time.Now()
	out := OutputConfig{JSON: jsonOut, Quiet: quietOut}

	var infos []ViewInfo
	for _, def := range views.Registry() {
		infos = append(infos, ViewInfo{
			Name:        def.Name,
			Description: def.Description,
			Pattern:     def.Pattern,
		})
	}

	if !jsonOut && !quietOut {
		ux.Title("Available views")
		for _, info := range infos {
			ux.FileStatus(info.Name, ux.IconBullet, info.Pattern)
			ux.Muted("    " + info.Description)
		}
		ux.Info(fmt.Sprintf("select with: benchviz render --only %s", infos[0].Name))
	}
	os.Exit(OutputResult(out, "views", start, infos, false, nil))
}
