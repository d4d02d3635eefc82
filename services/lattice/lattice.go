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

	"github.com/google/uuid"
)

// Qubit is the snapshot view of one edge qubit.
type Qubit struct {
	ID     int  `json:"id"`
	Axis   Axis `json:"axis"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	ErrorX bool `json:"error_x"`
	ErrorZ bool `json:"error_z"`
}

// Check is the snapshot view of one vertex or face check. Activated is
// derived state, always recomputed from the matrices and error flags.
type Check struct {
	ID        int  `json:"id"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Activated bool `json:"activated"`
}

// Lattice is the aggregate owning all per-build state: topology,
// stabilizer set, error flags and the derived syndrome.
//
// A Lattice is fully built by New and identified by an immutable
// generation tag. Rebuilding with a different size or code means calling
// New again and discarding this instance; no in-place reshaping exists.
type Lattice struct {
	topo   Topology
	code   string
	set    *StabilizerSet
	engine *Engine

	errX []bool
	errZ []bool
	syn  Syndrome

	generation string
}

// New validates the stabilizer set against the topology and returns a
// fresh error-free lattice with an all-inactive syndrome.
func New(t Topology, code string, set *StabilizerSet) (*Lattice, error) {
	if err := set.Validate(t); err != nil {
		return nil, fmt.Errorf("build lattice: %w", err)
	}
	engine := NewEngine(set, t)
	l := &Lattice{
		topo:       t,
		code:       code,
		set:        set,
		engine:     engine,
		errX:       make([]bool, t.QubitCount()),
		errZ:       make([]bool, t.QubitCount()),
		generation: uuid.New().String(),
	}
	l.syn = engine.Compute(l.errX, l.errZ)
	return l, nil
}

// Generation returns the tag identifying this built instance. Responses
// from remote calls issued against a different generation must not be
// applied here.
func (l *Lattice) Generation() string { return l.generation }

// Topology returns the index maps of this lattice.
func (l *Lattice) Topology() Topology { return l.topo }

// Code returns the code identifier the stabilizers were built for.
func (l *Lattice) Code() string { return l.code }

// Size returns L.
func (l *Lattice) Size() int { return l.topo.Size() }

// QubitCount returns 2L².
func (l *Lattice) QubitCount() int { return l.topo.QubitCount() }

// Stabilizers returns the stabilizer set. Callers must not mutate it.
func (l *Lattice) Stabilizers() *StabilizerSet { return l.set }

// Toggle inverts one error flag and folds the change into the syndrome.
//
// The pair law holds: toggling the same (qubit, type) twice restores the
// prior state exactly, and the other type's flag is never touched.
// Panics on an out-of-range qubit id; ids reaching this layer have been
// validated at the protocol boundary.
func (l *Lattice) Toggle(qubit int, typ ErrorType) {
	if qubit < 0 || qubit >= len(l.errX) {
		panic(fmt.Sprintf("lattice: qubit %d out of range [0,%d)", qubit, len(l.errX)))
	}
	switch typ {
	case ErrorX:
		l.errX[qubit] = !l.errX[qubit]
	case ErrorZ:
		l.errZ[qubit] = !l.errZ[qubit]
	default:
		panic(fmt.Sprintf("lattice: invalid error type %d", typ))
	}
	l.engine.FoldToggle(l.syn, qubit, typ)
}

// ApplyCorrection toggles every qubit flagged in the two correction
// vectors. Each vector must have exactly QubitCount entries; on a length
// mismatch the lattice is left untouched and ErrVectorLength is returned
// wrapped with detail.
func (l *Lattice) ApplyCorrection(corrX, corrZ []bool) error {
	n := l.QubitCount()
	if len(corrX) != n {
		return fmt.Errorf("%w: correction_x has %d entries, want %d", ErrVectorLength, len(corrX), n)
	}
	if len(corrZ) != n {
		return fmt.Errorf("%w: correction_z has %d entries, want %d", ErrVectorLength, len(corrZ), n)
	}
	for q, set := range corrX {
		if set {
			l.Toggle(q, ErrorX)
		}
	}
	for q, set := range corrZ {
		if set {
			l.Toggle(q, ErrorZ)
		}
	}
	return nil
}

// ApplyErrorVector toggles flags from a flat sampled-error vector of
// length 2·QubitCount, ordered [X flags..., Z flags...], the wire layout
// of the error sampling service.
func (l *Lattice) ApplyErrorVector(flat []bool) error {
	n := l.QubitCount()
	if len(flat) != 2*n {
		return fmt.Errorf("%w: error vector has %d entries, want %d", ErrVectorLength, len(flat), 2*n)
	}
	return l.ApplyCorrection(flat[:n], flat[n:])
}

// Syndrome returns a copy of the current syndrome in wire order (faces
// then vertices).
func (l *Lattice) Syndrome() Syndrome { return l.syn.Clone() }

// ErrorFlags returns copies of the X and Z flag vectors.
func (l *Lattice) ErrorFlags() (errX, errZ []bool) {
	errX = make([]bool, len(l.errX))
	errZ = make([]bool, len(l.errZ))
	copy(errX, l.errX)
	copy(errZ, l.errZ)
	return errX, errZ
}

// Qubits returns the snapshot view of all qubits in id order.
func (l *Lattice) Qubits() []Qubit {
	out := make([]Qubit, l.QubitCount())
	for id := range out {
		axis, x, y := l.topo.QubitCoords(id)
		out[id] = Qubit{ID: id, Axis: axis, X: x, Y: y, ErrorX: l.errX[id], ErrorZ: l.errZ[id]}
	}
	return out
}

// Vertices returns the snapshot view of all vertex checks in id order.
func (l *Lattice) Vertices() []Check {
	bits := l.engine.VertexBits(l.syn)
	out := make([]Check, l.topo.VertexCount())
	for id := range out {
		x, y := l.topo.VertexCoords(id)
		out[id] = Check{ID: id, X: x, Y: y, Activated: bits[id]}
	}
	return out
}

// Faces returns the snapshot view of all face checks in id order.
func (l *Lattice) Faces() []Check {
	bits := l.engine.FaceBits(l.syn)
	out := make([]Check, l.topo.FaceCount())
	for id := range out {
		x, y := l.topo.FaceCoords(id)
		out[id] = Check{ID: id, X: x, Y: y, Activated: bits[id]}
	}
	return out
}
