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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
	"github.com/AleutianAI/LatticeQEC/services/session"
)

var (
	showSize    int
	showCode    string
	showToggles []string // "X:0" or "Z:13" entries, applied in order
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Build a lattice locally and render it",
	Long: "Builds the stabilizer matrices locally (no remote service needed),\n" +
		"applies the requested error toggles and renders the lattice with its\n" +
		"syndrome.",
	Example: "  latticeqec show --size 4\n" +
		"  latticeqec show --size 5 --toggle X:0 --toggle Z:31",
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showSize, "size", 4, "Lattice size L (torus has 2*L*L qubits)")
	showCmd.Flags().StringVar(&showCode, "code", decoder.CodeToric2D, "Code family to build")
	showCmd.Flags().StringArrayVar(&showToggles, "toggle", nil,
		"Error toggle as TYPE:QUBIT, e.g. X:0 or Z:13 (repeatable)")
}

// parseToggle splits "X:13" into its error type and qubit index.
func parseToggle(spec string) (lattice.ErrorType, int, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("toggle %q: want TYPE:QUBIT", spec)
	}
	typ, err := lattice.ParseErrorType(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("toggle %q: %w", spec, err)
	}
	qubit, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("toggle %q: bad qubit index: %w", spec, err)
	}
	return typ, qubit, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s := session.New(session.Services{Source: decoder.LocalToricSource{}})
	if err := s.Rebuild(cmd.Context(), showSize, showCode); err != nil {
		return fmt.Errorf("build lattice: %w", err)
	}
	for _, spec := range showToggles {
		typ, qubit, err := parseToggle(spec)
		if err != nil {
			return err
		}
		if err := s.Toggle(qubit, typ); err != nil {
			return fmt.Errorf("toggle %s: %w", spec, err)
		}
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	renderSummary(snap)
	return nil
}
