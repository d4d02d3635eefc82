// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package decoder

import "github.com/AleutianAI/LatticeQEC/services/lattice"

// Wire types for the three remote operations. Binary matrices travel as
// JSON arrays of 0/1; boolean vectors as JSON booleans.

type stabilizerRequest struct {
	Size int    `json:"size"`
	Code string `json:"code"`
}

type stabilizerResponse struct {
	Hx        lattice.BinaryMatrix `json:"Hx"`
	Hz        lattice.BinaryMatrix `json:"Hz"`
	LogicalXs lattice.BinaryMatrix `json:"logical_xs"`
	LogicalZs lattice.BinaryMatrix `json:"logical_zs"`
}

type sampleRequest struct {
	Size       int     `json:"size"`
	ErrorRate  float64 `json:"p"`
	Deformed   bool    `json:"deformed"`
	ErrorModel string  `json:"error_model"`
}

type sampleResponse struct {
	// Errors is ordered [X flags..., Z flags...], length 2·QubitCount.
	Errors []bool `json:"errors"`
}

type decodeRequest struct {
	Size       int     `json:"size"`
	ErrorRate  float64 `json:"p"`
	MaxBPIters int     `json:"max_bp_iter"`
	Syndrome   []bool  `json:"syndrome"`
	Deformed   bool    `json:"deformed"`
	Decoder    string  `json:"decoder"`
	ErrorModel string  `json:"error_model"`
	Code       string  `json:"code"`
}

type decodeResponse struct {
	CorrectionX []bool `json:"correction_x"`
	CorrectionZ []bool `json:"correction_z"`
}
