// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package decoder implements the request/response protocol between the
// lattice core and the external code-construction, error-sampling and
// decoding services.
//
// The services are opaque: this package packages the current context
// (lattice size, code, error model, decoder selection, syndrome),
// performs one synchronous round trip, and validates the shape of what
// comes back. A correction returned by a decoder is not guaranteed to
// clear the syndrome; a valid-but-wrong correction is an expected
// outcome, not an error. Shape mismatches, on the other hand, fail fast
// with ErrProtocolMismatch and are never truncated or padded.
package decoder

import (
	"context"
	"errors"

	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// Sentinel errors for the decoder protocol.
var (
	// ErrProtocolMismatch indicates a remote response whose vector or
	// matrix shapes disagree with the lattice's qubit and check counts.
	ErrProtocolMismatch = errors.New("decoder protocol mismatch")

	// ErrRemoteStatus indicates a non-success HTTP status from a remote
	// service.
	ErrRemoteStatus = errors.New("remote service returned error status")
)

// SampleParams is the context for one error-sampling request.
type SampleParams struct {
	Size       int
	ErrorRate  float64
	Deformed   bool
	ErrorModel string
}

// DecodeParams is the context for one decode request.
type DecodeParams struct {
	Size       int
	ErrorRate  float64
	MaxBPIters int
	Deformed   bool
	Decoder    string
	ErrorModel string
	Code       string
	Syndrome   []bool
}

// Correction is a decoder's proposed fix: per-qubit toggle vectors, one
// per error type, each of length QubitCount.
type Correction struct {
	X []bool
	Z []bool
}

// StabilizerSource supplies the parity-check matrices for a (size, code)
// pair. Production implementations call the code construction service;
// tests and the CLI use the in-process toric constructor.
type StabilizerSource interface {
	GetStabilizers(ctx context.Context, size int, code string) (*lattice.StabilizerSet, error)
}

// ErrorSampler draws a random error pattern from the remote error model.
// The result is a flat vector of length 2·QubitCount ordered
// [X flags..., Z flags...], meant to be applied as per-qubit toggles.
type ErrorSampler interface {
	SampleErrors(ctx context.Context, params SampleParams) ([]bool, error)
}

// DecodingService runs one opaque decode round trip.
type DecodingService interface {
	Decode(ctx context.Context, params DecodeParams) (*Correction, error)
}

// LocalToricSource is a StabilizerSource that constructs the toric code
// in process, with no remote call. It ignores ctx and never fails for
// the codes it knows.
type LocalToricSource struct{}

// GetStabilizers implements StabilizerSource.
func (LocalToricSource) GetStabilizers(_ context.Context, size int, code string) (*lattice.StabilizerSet, error) {
	if !KnownCode(code) {
		return nil, errors.New("unknown code " + code)
	}
	return lattice.BuildToricStabilizers(lattice.NewTopology(size)), nil
}
