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
	"math/rand"
	"testing"
)

func testEngine(t *testing.T, size int) (*Engine, Topology) {
	t.Helper()
	topo := NewTopology(size)
	set := BuildToricStabilizers(topo)
	if err := set.Validate(topo); err != nil {
		t.Fatalf("invalid toric set: %v", err)
	}
	return NewEngine(set, topo), topo
}

func TestEngine_AllClearBaseline(t *testing.T) {
	engine, topo := testEngine(t, 3)
	syn := engine.Compute(make([]bool, topo.QubitCount()), make([]bool, topo.QubitCount()))
	if len(syn) != topo.FaceCount()+topo.VertexCount() {
		t.Fatalf("syndrome length %d, want %d", len(syn), topo.FaceCount()+topo.VertexCount())
	}
	if syn.Weight() != 0 {
		t.Errorf("error-free lattice has %d active checks", syn.Weight())
	}
}

// A single X error on qubit 0 of the L=2 torus activates exactly the two
// vertex checks incident to that edge and no face check.
func TestEngine_SingleXErrorL2(t *testing.T) {
	engine, topo := testEngine(t, 2)
	errX := make([]bool, topo.QubitCount())
	errZ := make([]bool, topo.QubitCount())
	errX[0] = true

	syn := engine.Compute(errX, errZ)
	for f, active := range engine.FaceBits(syn) {
		if active {
			t.Errorf("face check %d active on X-only error", f)
		}
	}
	vertexBits := engine.VertexBits(syn)
	active := 0
	for _, v := range vertexBits {
		if v {
			active++
		}
	}
	if active != 2 {
		t.Fatalf("%d vertex checks active, want 2", active)
	}
	// Qubit 0 is the AxisX edge at (0,0), shared by vertices (0,0) and (1,0).
	for _, want := range []int{topo.VertexIndex(0, 0), topo.VertexIndex(1, 0)} {
		if !vertexBits[want] {
			t.Errorf("vertex check %d not active", want)
		}
	}
}

// Parity: each check's activation is the mod-2 sum of its support flags.
func TestEngine_ParityAgainstDefinition(t *testing.T) {
	engine, topo := testEngine(t, 4)
	set := BuildToricStabilizers(topo)

	rng := rand.New(rand.NewSource(7))
	errX := make([]bool, topo.QubitCount())
	errZ := make([]bool, topo.QubitCount())
	for q := range errX {
		errX[q] = rng.Intn(2) == 1
		errZ[q] = rng.Intn(2) == 1
	}

	syn := engine.Compute(errX, errZ)
	for row := 0; row < set.Hz.Rows(); row++ {
		parity := 0
		for _, q := range set.Hz.Support(row) {
			if errZ[q] {
				parity ^= 1
			}
		}
		if engine.FaceBits(syn)[row] != (parity == 1) {
			t.Errorf("face check %d: activation disagrees with support parity", row)
		}
	}
	for row := 0; row < set.Hx.Rows(); row++ {
		parity := 0
		for _, q := range set.Hx.Support(row) {
			if errX[q] {
				parity ^= 1
			}
		}
		if engine.VertexBits(syn)[row] != (parity == 1) {
			t.Errorf("vertex check %d: activation disagrees with support parity", row)
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine, topo := testEngine(t, 3)
	errX := make([]bool, topo.QubitCount())
	errZ := make([]bool, topo.QubitCount())
	errX[1] = true
	errZ[4] = true
	errZ[topo.QubitCount()-1] = true

	first := engine.Compute(errX, errZ)
	for i := 0; i < 10; i++ {
		again := engine.Compute(errX, errZ)
		for k := range first {
			if first[k] != again[k] {
				t.Fatalf("recomputation %d differs at check %d", i, k)
			}
		}
	}
}

// The O(degree) incremental fold must stay identical to the full sweep
// through an arbitrary toggle sequence.
func TestEngine_FoldMatchesFullSweep(t *testing.T) {
	engine, topo := testEngine(t, 5)
	errX := make([]bool, topo.QubitCount())
	errZ := make([]bool, topo.QubitCount())
	syn := engine.Compute(errX, errZ)

	rng := rand.New(rand.NewSource(42))
	for step := 0; step < 500; step++ {
		q := rng.Intn(topo.QubitCount())
		typ := ErrorType(rng.Intn(2))
		if typ == ErrorX {
			errX[q] = !errX[q]
		} else {
			errZ[q] = !errZ[q]
		}
		engine.FoldToggle(syn, q, typ)

		full := engine.Compute(errX, errZ)
		for k := range full {
			if syn[k] != full[k] {
				t.Fatalf("step %d (qubit %d, %v): fold and sweep disagree at check %d", step, q, typ, k)
			}
		}
	}
}

func TestParseErrorType(t *testing.T) {
	if typ, err := ParseErrorType("X"); err != nil || typ != ErrorX {
		t.Errorf(`ParseErrorType("X") = %v, %v`, typ, err)
	}
	if typ, err := ParseErrorType("Z"); err != nil || typ != ErrorZ {
		t.Errorf(`ParseErrorType("Z") = %v, %v`, typ, err)
	}
	if _, err := ParseErrorType("Y"); err == nil {
		t.Error(`ParseErrorType("Y") succeeded, want error`)
	}
}
