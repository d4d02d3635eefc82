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

import "testing"

func TestTopology_Counts(t *testing.T) {
	tests := []struct {
		size     int
		qubits   int
		vertices int
		faces    int
	}{
		{1, 2, 1, 1},
		{2, 8, 4, 4},
		{3, 18, 9, 9},
		{5, 50, 25, 25},
	}
	for _, tc := range tests {
		topo := NewTopology(tc.size)
		if got := topo.QubitCount(); got != tc.qubits {
			t.Errorf("L=%d: QubitCount=%d, want %d", tc.size, got, tc.qubits)
		}
		if got := topo.VertexCount(); got != tc.vertices {
			t.Errorf("L=%d: VertexCount=%d, want %d", tc.size, got, tc.vertices)
		}
		if got := topo.FaceCount(); got != tc.faces {
			t.Errorf("L=%d: FaceCount=%d, want %d", tc.size, got, tc.faces)
		}
	}
}

// Every index map must be a total bijection onto its dense range.
func TestTopology_QubitBijection(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 7} {
		topo := NewTopology(size)
		seen := make(map[int]bool, topo.QubitCount())
		for _, axis := range []Axis{AxisX, AxisY} {
			for x := 0; x < size; x++ {
				for y := 0; y < size; y++ {
					id := topo.QubitIndex(axis, x, y)
					if id < 0 || id >= topo.QubitCount() {
						t.Fatalf("L=%d: qubit id %d out of range", size, id)
					}
					if seen[id] {
						t.Fatalf("L=%d: qubit id %d assigned twice", size, id)
					}
					seen[id] = true

					gotAxis, gotX, gotY := topo.QubitCoords(id)
					if gotAxis != axis || gotX != x || gotY != y {
						t.Fatalf("L=%d: QubitCoords(%d) = (%v,%d,%d), want (%v,%d,%d)",
							size, id, gotAxis, gotX, gotY, axis, x, y)
					}
				}
			}
		}
		if len(seen) != topo.QubitCount() {
			t.Errorf("L=%d: assigned %d qubit ids, want %d", size, len(seen), topo.QubitCount())
		}
	}
}

func TestTopology_CheckBijections(t *testing.T) {
	for _, size := range []int{1, 2, 4, 6} {
		topo := NewTopology(size)
		seenV := make(map[int]bool)
		seenF := make(map[int]bool)
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				v := topo.VertexIndex(x, y)
				f := topo.FaceIndex(x, y)
				if seenV[v] || seenF[f] {
					t.Fatalf("L=%d: duplicate check id at (%d,%d)", size, x, y)
				}
				seenV[v] = true
				seenF[f] = true

				if vx, vy := topo.VertexCoords(v); vx != x || vy != y {
					t.Fatalf("L=%d: VertexCoords(%d) = (%d,%d), want (%d,%d)", size, v, vx, vy, x, y)
				}
				if fx, fy := topo.FaceCoords(f); fx != x || fy != y {
					t.Fatalf("L=%d: FaceCoords(%d) = (%d,%d), want (%d,%d)", size, f, fx, fy, x, y)
				}
			}
		}
		if len(seenV) != topo.VertexCount() || len(seenF) != topo.FaceCount() {
			t.Errorf("L=%d: check id ranges not dense", size)
		}
	}
}

// Coordinates wrap toroidally, including negatives.
func TestTopology_Wrap(t *testing.T) {
	topo := NewTopology(3)
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"x wraps forward", topo.QubitIndex(AxisX, 3, 1), topo.QubitIndex(AxisX, 0, 1)},
		{"y wraps forward", topo.QubitIndex(AxisY, 1, 5), topo.QubitIndex(AxisY, 1, 2)},
		{"x wraps backward", topo.QubitIndex(AxisX, -1, 0), topo.QubitIndex(AxisX, 2, 0)},
		{"vertex wraps", topo.VertexIndex(-1, -1), topo.VertexIndex(2, 2)},
		{"face wraps", topo.FaceIndex(4, -2), topo.FaceIndex(1, 1)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestTopology_InvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewTopology(0) did not panic")
		}
	}()
	NewTopology(0)
}
