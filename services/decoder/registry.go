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

// Identifier registries for the remote services. The algorithms behind
// these names live entirely on the remote side; the core only routes the
// strings. The lists mirror what the decoding service advertises for 2D
// codes.

// Default identifiers used when the caller does not pick one.
const (
	CodeToric2D         = "Toric2DCode"
	DecoderBPOSD        = "BeliefPropagationOSDDecoder"
	ErrorModelPauli     = "PauliErrorModel"
	DecoderToricMatcher = "Toric2DMatchingDecoder"
)

// Codes are the known code-construction identifiers.
var Codes = []string{
	CodeToric2D,
	"Planar2DCode",
}

// Decoders are the known decoder identifiers.
var Decoders = []string{
	DecoderToricMatcher,
	DecoderBPOSD,
	"MemoryBeliefPropagationDecoder",
	"UnionFindDecoder",
	"SweepMatchDecoder",
}

// ErrorModels are the known error-model identifiers.
var ErrorModels = []string{
	ErrorModelPauli,
	"DeformedXZZXErrorModel",
	"DeformedXYErrorModel",
	"DeformedRandomErrorModel",
}

// Deformations are the known lattice deformation names.
var Deformations = []string{"XZZX", "XY"}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// KnownCode reports whether name is a registered code identifier.
func KnownCode(name string) bool { return contains(Codes, name) }

// KnownDecoder reports whether name is a registered decoder identifier.
func KnownDecoder(name string) bool { return contains(Decoders, name) }

// KnownErrorModel reports whether name is a registered error model.
func KnownErrorModel(name string) bool { return contains(ErrorModels, name) }
