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
	"errors"
	"testing"
)

func TestBinaryMatrix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       BinaryMatrix
		rows    int
		cols    int
		wantErr error
	}{
		{"valid", BinaryMatrix{{1, 0}, {0, 1}}, 2, 2, nil},
		{"row count", BinaryMatrix{{1, 0}}, 2, 2, ErrMatrixShape},
		{"col count", BinaryMatrix{{1, 0, 1}, {0, 1, 0}}, 2, 2, ErrMatrixShape},
		{"non-binary entry", BinaryMatrix{{1, 2}, {0, 1}}, 2, 2, ErrMatrixEntry},
		{"empty valid", BinaryMatrix{}, 0, 5, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate(tc.rows, tc.cols)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuildToricStabilizers_Shape(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		topo := NewTopology(size)
		set := BuildToricStabilizers(topo)
		if err := set.Validate(topo); err != nil {
			t.Fatalf("L=%d: %v", size, err)
		}
		for i := 0; i < set.Hx.Rows(); i++ {
			if w := set.Hx.RowWeight(i); w != ToricCheckDegree {
				t.Errorf("L=%d: vertex check %d has weight %d, want %d", size, i, w, ToricCheckDegree)
			}
		}
		for i := 0; i < set.Hz.Rows(); i++ {
			if w := set.Hz.RowWeight(i); w != ToricCheckDegree {
				t.Errorf("L=%d: face check %d has weight %d, want %d", size, i, w, ToricCheckDegree)
			}
		}
	}
}

// Stabilizers of the two families must commute: every vertex row and face
// row overlap on an even number of qubits.
func TestBuildToricStabilizers_Commutation(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		topo := NewTopology(size)
		set := BuildToricStabilizers(topo)
		for v := 0; v < set.Hx.Rows(); v++ {
			for f := 0; f < set.Hz.Rows(); f++ {
				overlap := 0
				for q := range set.Hx[v] {
					if set.Hx[v][q] == 1 && set.Hz[f][q] == 1 {
						overlap++
					}
				}
				if overlap%2 != 0 {
					t.Fatalf("L=%d: vertex %d and face %d overlap on %d qubits", size, v, f, overlap)
				}
			}
		}
	}
}

func TestBuildToricStabilizers_Logicals(t *testing.T) {
	topo := NewTopology(4)
	set := BuildToricStabilizers(topo)
	if set.LogicalsX.Rows() != 2 || set.LogicalsZ.Rows() != 2 {
		t.Fatalf("want 2 logical operators per type, got %d X and %d Z",
			set.LogicalsX.Rows(), set.LogicalsZ.Rows())
	}
	for i := 0; i < 2; i++ {
		if w := set.LogicalsX.RowWeight(i); w != topo.Size() {
			t.Errorf("logical X %d has weight %d, want %d", i, w, topo.Size())
		}
		if w := set.LogicalsZ.RowWeight(i); w != topo.Size() {
			t.Errorf("logical Z %d has weight %d, want %d", i, w, topo.Size())
		}
	}
}
