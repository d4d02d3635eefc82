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

// Axis identifies the orientation of an edge qubit on the torus.
//
// An AxisX qubit at (x, y) sits on the edge from vertex (x, y) to vertex
// (x+1, y); an AxisY qubit at (x, y) sits on the edge from (x, y) to
// (x, y+1). Both coordinates wrap modulo the lattice size.
type Axis int

const (
	// AxisX is a horizontal edge qubit.
	AxisX Axis = iota

	// AxisY is a vertical edge qubit.
	AxisY
)

// String returns "x" or "y", matching the axis naming of the code
// construction service.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Topology provides the index bijections for an L×L toroidal lattice.
//
// All maps are total bijections onto dense ranges:
//
//	qubits:   (axis, x, y) -> [0, 2L²)
//	vertices: (x, y)       -> [0, L²)
//	faces:    (x, y)       -> [0, L²)
//
// Coordinates are wrapped modulo L before indexing, so callers may pass
// x-1 or y+1 without range bookkeeping. A Topology is an immutable value.
type Topology struct {
	size int
}

// NewTopology returns the topology of an L×L torus.
//
// Panics if size < 1; lattice sizes come from validated configuration and
// a non-positive size is a programming error.
func NewTopology(size int) Topology {
	if size < 1 {
		panic(fmt.Sprintf("lattice: invalid size %d", size))
	}
	return Topology{size: size}
}

// Size returns L.
func (t Topology) Size() int { return t.size }

// QubitCount returns 2L², the number of edge qubits on the torus.
func (t Topology) QubitCount() int { return 2 * t.size * t.size }

// VertexCount returns L².
func (t Topology) VertexCount() int { return t.size * t.size }

// FaceCount returns L².
func (t Topology) FaceCount() int { return t.size * t.size }

// wrap reduces a coordinate to [0, L), handling negative inputs.
func (t Topology) wrap(c int) int {
	c %= t.size
	if c < 0 {
		c += t.size
	}
	return c
}

// QubitIndex maps (axis, x, y) to a qubit identifier in [0, 2L²).
//
// AxisX qubits occupy [0, L²) and AxisY qubits [L², 2L²), each block in
// row-major (x, y) order.
func (t Topology) QubitIndex(axis Axis, x, y int) int {
	if axis != AxisX && axis != AxisY {
		panic(fmt.Sprintf("lattice: invalid axis %d", axis))
	}
	return int(axis)*t.size*t.size + t.wrap(x)*t.size + t.wrap(y)
}

// VertexIndex maps (x, y) to a vertex-check identifier in [0, L²).
func (t Topology) VertexIndex(x, y int) int {
	return t.wrap(x)*t.size + t.wrap(y)
}

// FaceIndex maps (x, y) to a face-check identifier in [0, L²).
func (t Topology) FaceIndex(x, y int) int {
	return t.wrap(x)*t.size + t.wrap(y)
}

// QubitCoords is the inverse of QubitIndex.
//
// Panics if id is outside [0, QubitCount).
func (t Topology) QubitCoords(id int) (axis Axis, x, y int) {
	if id < 0 || id >= t.QubitCount() {
		panic(fmt.Sprintf("lattice: qubit id %d out of range [0,%d)", id, t.QubitCount()))
	}
	block := t.size * t.size
	axis = Axis(id / block)
	rem := id % block
	return axis, rem / t.size, rem % t.size
}

// VertexCoords is the inverse of VertexIndex.
//
// Panics if id is outside [0, VertexCount).
func (t Topology) VertexCoords(id int) (x, y int) {
	if id < 0 || id >= t.VertexCount() {
		panic(fmt.Sprintf("lattice: vertex id %d out of range [0,%d)", id, t.VertexCount()))
	}
	return id / t.size, id % t.size
}

// FaceCoords is the inverse of FaceIndex.
//
// Panics if id is outside [0, FaceCount).
func (t Topology) FaceCoords(id int) (x, y int) {
	if id < 0 || id >= t.FaceCount() {
		panic(fmt.Sprintf("lattice: face id %d out of range [0,%d)", id, t.FaceCount()))
	}
	return id / t.size, id % t.size
}
