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
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/LatticeQEC/pkg/ux"
	"github.com/AleutianAI/LatticeQEC/services/decoder"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List known codes, decoders and error models",
	Run: func(cmd *cobra.Command, args []string) {
		ux.Box("Codes", strings.Join(decoder.Codes, "\n"))
		ux.Box("Decoders", strings.Join(decoder.Decoders, "\n"))
		ux.Box("Error models", strings.Join(decoder.ErrorModels, "\n"))
		ux.Box("Deformations", strings.Join(decoder.Deformations, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
