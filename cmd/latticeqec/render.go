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
	"strings"

	"github.com/AleutianAI/LatticeQEC/pkg/ux"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
	"github.com/AleutianAI/LatticeQEC/services/session"
)

// qubitGlyph picks the display letter for a qubit's error flags. A qubit
// carrying both an X and a Z flag renders as Y; the stored state stays
// two independent booleans.
func qubitGlyph(q lattice.Qubit, clean string) string {
	switch {
	case q.ErrorX && q.ErrorZ:
		return ux.Styles.QubitBoth.Render("Y")
	case q.ErrorX:
		return ux.Styles.QubitX.Render("X")
	case q.ErrorZ:
		return ux.Styles.QubitZ.Render("Z")
	default:
		return ux.Styles.QubitClean.Render(clean)
	}
}

func vertexGlyph(c lattice.Check) string {
	if c.Activated {
		return ux.Styles.CheckActive.Render("●")
	}
	return ux.Styles.CheckIdle.Render("+")
}

func faceGlyph(c lattice.Check) string {
	if c.Activated {
		return ux.Styles.CheckActive.Render("■")
	}
	return ux.Styles.CheckIdle.Render("·")
}

// renderLattice draws the torus as size rows of vertices joined by
// horizontal qubits, interleaved with rows of vertical qubits and faces.
// Row y holds vertices (·,y); the face row below it holds faces (·,y).
func renderLattice(snap *session.Snapshot) string {
	size := snap.Size
	topo := lattice.NewTopology(size)
	var b strings.Builder

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := snap.Vertices[topo.VertexIndex(x, y)]
			qx := snap.Qubits[topo.QubitIndex(lattice.AxisX, x, y)]
			b.WriteString(vertexGlyph(v))
			b.WriteString(ux.Styles.QubitClean.Render("─"))
			b.WriteString(qubitGlyph(qx, "─"))
			b.WriteString(ux.Styles.QubitClean.Render("─"))
		}
		b.WriteString("\n")
		for x := 0; x < size; x++ {
			f := snap.Faces[topo.FaceIndex(x, y)]
			qy := snap.Qubits[topo.QubitIndex(lattice.AxisY, x, y)]
			b.WriteString(qubitGlyph(qy, "│"))
			b.WriteString(" ")
			b.WriteString(faceGlyph(f))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderSummary prints the lattice grid plus a one-line status footer.
func renderSummary(snap *session.Snapshot) {
	ux.Box(fmt.Sprintf("%s  L=%d", snap.Code, snap.Size), renderLattice(snap))

	active := 0
	for _, on := range snap.Syndrome {
		if on {
			active++
		}
	}
	flagged := 0
	for _, q := range snap.Qubits {
		if q.ErrorX || q.ErrorZ {
			flagged++
		}
	}
	ux.Muted(fmt.Sprintf("qubits=%d flagged=%d syndrome_weight=%d generation=%s",
		len(snap.Qubits), flagged, active, snap.Generation))
}
