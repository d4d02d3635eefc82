// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lattice implements the state model of a 2D toroidal surface code.
//
// The package owns three concerns:
//
//   - Topology: pure index arithmetic mapping lattice coordinates to dense
//     qubit, vertex and face identifiers on an L×L torus.
//   - Stabilizers: the binary parity-check matrices Hx (vertex checks over
//     X-type error flags) and Hz (face checks over Z-type flags), plus the
//     logical operator supports fetched alongside them.
//   - Lattice: the mutable aggregate holding per-qubit error flags and the
//     derived check activations, recomputed after every mutation.
//
// A Lattice is built whole by New and never partially mutated into a new
// shape: changing the lattice size or code means constructing a fresh
// instance and discarding the old one. Each instance carries a generation
// tag so that callers can detect and drop responses from remote services
// that were issued against a previous instance.
//
// # Thread Safety
//
// Lattice is not safe for concurrent use. The owning session serializes
// all reads and mutations (see services/session).
package lattice
