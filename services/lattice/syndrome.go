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

import "fmt"

// ErrorType selects one of the two independent error flags on a qubit.
type ErrorType int

const (
	// ErrorX is an X-type (bit flip) error, detected by vertex checks.
	ErrorX ErrorType = iota

	// ErrorZ is a Z-type (phase flip) error, detected by face checks.
	ErrorZ
)

// String returns "X" or "Z".
func (e ErrorType) String() string {
	switch e {
	case ErrorX:
		return "X"
	case ErrorZ:
		return "Z"
	default:
		return "unknown"
	}
}

// ParseErrorType converts the wire spelling ("X" or "Z") back to an
// ErrorType.
func ParseErrorType(s string) (ErrorType, error) {
	switch s {
	case "X":
		return ErrorX, nil
	case "Z":
		return ErrorZ, nil
	default:
		return 0, fmt.Errorf("unknown error type %q", s)
	}
}

// Syndrome is the vector of check activations in wire order: all face
// activations first, then all vertex activations.
type Syndrome []bool

// Weight returns the number of activated checks.
func (s Syndrome) Weight() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (s Syndrome) Clone() Syndrome {
	out := make(Syndrome, len(s))
	copy(out, s)
	return out
}

// Engine computes check activations from a stabilizer set.
//
// Besides the full sweep required by the contract it maintains per-qubit
// incident-check lists so a single toggle can be folded into an existing
// syndrome in O(degree) time. Both paths produce identical results; the
// tests assert this.
type Engine struct {
	set *StabilizerSet

	faceCount   int
	vertexCount int

	// incidentVertex[q] lists the vertex-check rows of Hx containing q;
	// incidentFace[q] the face-check rows of Hz.
	incidentVertex [][]int
	incidentFace   [][]int
}

// NewEngine builds an engine for a validated stabilizer set.
func NewEngine(set *StabilizerSet, t Topology) *Engine {
	e := &Engine{
		set:            set,
		faceCount:      set.Hz.Rows(),
		vertexCount:    set.Hx.Rows(),
		incidentVertex: make([][]int, t.QubitCount()),
		incidentFace:   make([][]int, t.QubitCount()),
	}
	for row := 0; row < set.Hx.Rows(); row++ {
		for _, q := range set.Hx.Support(row) {
			e.incidentVertex[q] = append(e.incidentVertex[q], row)
		}
	}
	for row := 0; row < set.Hz.Rows(); row++ {
		for _, q := range set.Hz.Support(row) {
			e.incidentFace[q] = append(e.incidentFace[q], row)
		}
	}
	return e
}

// Compute performs the full sweep: for every face check the XOR of the
// Z flags over its support, then for every vertex check the XOR of the
// X flags over its support.
func (e *Engine) Compute(errX, errZ []bool) Syndrome {
	syn := make(Syndrome, e.faceCount+e.vertexCount)
	for row := 0; row < e.faceCount; row++ {
		active := false
		for q, v := range e.set.Hz[row] {
			if v != 0 && errZ[q] {
				active = !active
			}
		}
		syn[row] = active
	}
	for row := 0; row < e.vertexCount; row++ {
		active := false
		for q, v := range e.set.Hx[row] {
			if v != 0 && errX[q] {
				active = !active
			}
		}
		syn[e.faceCount+row] = active
	}
	return syn
}

// FoldToggle updates syn in place for a single flag toggle on qubit q,
// flipping only the checks incident to that qubit.
func (e *Engine) FoldToggle(syn Syndrome, q int, typ ErrorType) {
	switch typ {
	case ErrorX:
		for _, row := range e.incidentVertex[q] {
			syn[e.faceCount+row] = !syn[e.faceCount+row]
		}
	case ErrorZ:
		for _, row := range e.incidentFace[q] {
			syn[row] = !syn[row]
		}
	default:
		panic(fmt.Sprintf("lattice: invalid error type %d", typ))
	}
}

// FaceBits returns the face-check slice of the syndrome.
func (e *Engine) FaceBits(syn Syndrome) []bool { return syn[:e.faceCount] }

// VertexBits returns the vertex-check slice of the syndrome.
func (e *Engine) VertexBits(syn Syndrome) []bool { return syn[e.faceCount:] }
