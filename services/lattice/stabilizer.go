// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lattice

import (
	"fmt"
	"log/slog"
)

// ToricCheckDegree is the support weight of every check on the torus.
// Planar variants have boundary checks of lower weight, so Validate only
// warns on other weights.
const ToricCheckDegree = 4

// BinaryMatrix is a dense binary matrix with rows stored as 0/1 byte
// slices. This is the shape the code construction service sends on the
// wire (JSON arrays of 0/1), so it is kept unpacked.
type BinaryMatrix [][]uint8

// Rows returns the number of rows.
func (m BinaryMatrix) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m BinaryMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// RowWeight returns the number of 1 entries in row i.
func (m BinaryMatrix) RowWeight(i int) int {
	w := 0
	for _, v := range m[i] {
		if v != 0 {
			w++
		}
	}
	return w
}

// Support returns the column indices of the 1 entries in row i.
func (m BinaryMatrix) Support(i int) []int {
	support := make([]int, 0, ToricCheckDegree)
	for col, v := range m[i] {
		if v != 0 {
			support = append(support, col)
		}
	}
	return support
}

// Validate checks that the matrix has exactly rows×cols binary entries.
//
// Returns ErrMatrixShape or ErrMatrixEntry (wrapped with position
// detail); a malformed matrix from the remote service must be rejected
// before it reaches a Lattice.
func (m BinaryMatrix) Validate(rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%w: got %d rows, want %d", ErrMatrixShape, len(m), rows)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixShape, i, len(row), cols)
		}
		for j, v := range row {
			if v > 1 {
				return fmt.Errorf("%w: entry (%d,%d) = %d", ErrMatrixEntry, i, j, v)
			}
		}
	}
	return nil
}

// StabilizerSet holds the parity-check matrices and logical operators for
// one (lattice size, code) pair. The set is fetched once per lattice
// build and never mutated afterwards.
type StabilizerSet struct {
	// Hx has one row per vertex check; entry (v, q) is 1 iff qubit q is
	// in the support of vertex check v. Applied to X-type error flags.
	Hx BinaryMatrix

	// Hz has one row per face check, applied to Z-type error flags.
	Hz BinaryMatrix

	// LogicalsX and LogicalsZ are qubit-support vectors of the logical
	// operators, one row each. Read-only; carried for display and for
	// downstream failure analysis, never used in syndrome computation.
	LogicalsX BinaryMatrix
	LogicalsZ BinaryMatrix
}

// Validate checks the whole set against a topology.
//
// Hx must be VertexCount×QubitCount, Hz FaceCount×QubitCount, and every
// logical row QubitCount wide. Unexpected row weights are logged at Warn
// level but accepted.
func (s *StabilizerSet) Validate(t Topology) error {
	if err := s.Hx.Validate(t.VertexCount(), t.QubitCount()); err != nil {
		return fmt.Errorf("Hx: %w", err)
	}
	if err := s.Hz.Validate(t.FaceCount(), t.QubitCount()); err != nil {
		return fmt.Errorf("Hz: %w", err)
	}
	for name, m := range map[string]BinaryMatrix{"logical_xs": s.LogicalsX, "logical_zs": s.LogicalsZ} {
		if err := m.Validate(m.Rows(), t.QubitCount()); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for i := 0; i < s.Hx.Rows(); i++ {
		if w := s.Hx.RowWeight(i); w != ToricCheckDegree {
			slog.Warn("unexpected vertex check weight", "check", i, "weight", w)
		}
	}
	for i := 0; i < s.Hz.Rows(); i++ {
		if w := s.Hz.RowWeight(i); w != ToricCheckDegree {
			slog.Warn("unexpected face check weight", "check", i, "weight", w)
		}
	}
	return nil
}

// BuildToricStabilizers constructs the stabilizer set of the standard
// toric code directly from the topology.
//
// Vertex check (x, y) covers the four edges meeting at vertex (x, y):
// the AxisX qubits at (x, y) and (x-1, y) and the AxisY qubits at (x, y)
// and (x, y-1). Face check (x, y) covers the four edges bounding the
// plaquette with corner (x, y): the AxisX qubits at (x, y) and (x, y+1)
// and the AxisY qubits at (x, y) and (x+1, y).
//
// Two logical operators per type are emitted, one per noncontractible
// cycle direction of the torus.
//
// This in-process constructor backs the local StabilizerSource used by
// the CLI and the tests; production deployments fetch the set from the
// code construction service instead.
func BuildToricStabilizers(t Topology) *StabilizerSet {
	nq := t.QubitCount()
	l := t.Size()

	hx := make(BinaryMatrix, t.VertexCount())
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			row := make([]uint8, nq)
			row[t.QubitIndex(AxisX, x, y)] = 1
			row[t.QubitIndex(AxisX, x-1, y)] = 1
			row[t.QubitIndex(AxisY, x, y)] = 1
			row[t.QubitIndex(AxisY, x, y-1)] = 1
			hx[t.VertexIndex(x, y)] = row
		}
	}

	hz := make(BinaryMatrix, t.FaceCount())
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			row := make([]uint8, nq)
			row[t.QubitIndex(AxisX, x, y)] = 1
			row[t.QubitIndex(AxisX, x, y+1)] = 1
			row[t.QubitIndex(AxisY, x, y)] = 1
			row[t.QubitIndex(AxisY, x+1, y)] = 1
			hz[t.FaceIndex(x, y)] = row
		}
	}

	logicalX1 := make([]uint8, nq)
	logicalX2 := make([]uint8, nq)
	logicalZ1 := make([]uint8, nq)
	logicalZ2 := make([]uint8, nq)
	for c := 0; c < l; c++ {
		logicalX1[t.QubitIndex(AxisX, c, 0)] = 1
		logicalX2[t.QubitIndex(AxisY, 0, c)] = 1
		logicalZ1[t.QubitIndex(AxisX, 0, c)] = 1
		logicalZ2[t.QubitIndex(AxisY, c, 0)] = 1
	}

	return &StabilizerSet{
		Hx:        hx,
		Hz:        hz,
		LogicalsX: BinaryMatrix{logicalX1, logicalX2},
		LogicalsZ: BinaryMatrix{logicalZ1, logicalZ2},
	}
}
