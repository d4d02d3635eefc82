// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session owns the lattice lifecycle and serializes every
// interaction with it.
//
// A Session is single-owner, single-user state: one lattice, one set of
// error-model parameters, and at most one outstanding remote request per
// kind (rebuild, sample, decode). Remote calls run outside the session
// lock; their results are applied only if the lattice generation they
// were issued against is still current, otherwise they are dropped as
// stale. The lifecycle is Unbuilt → Built → (on size/code change)
// Rebuilding → Built; no partially built lattice is ever observable.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// State is the lattice lifecycle state.
type State int

const (
	// StateUnbuilt means no lattice has been constructed yet.
	StateUnbuilt State = iota

	// StateBuilt means a lattice is available for reads and toggles.
	StateBuilt

	// StateRebuilding means a stabilizer fetch is outstanding and the
	// lattice is being replaced; reads and toggles are rejected.
	StateRebuilding
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilt:
		return "built"
	case StateRebuilding:
		return "rebuilding"
	default:
		return "unknown"
	}
}

// Params is the error-model and decoder context attached to sample and
// decode requests.
type Params struct {
	ErrorRate  float64 `json:"p"`
	MaxBPIters int     `json:"max_bp_iter"`
	Deformed   bool    `json:"deformed"`
	Decoder    string  `json:"decoder"`
	ErrorModel string  `json:"error_model"`
}

// DefaultParams mirror the defaults the interactive frontend starts with.
func DefaultParams() Params {
	return Params{
		ErrorRate:  0.1,
		MaxBPIters: 10,
		Decoder:    decoder.DecoderBPOSD,
		ErrorModel: decoder.ErrorModelPauli,
	}
}

// Services are the remote capabilities a session depends on. Tests
// substitute canned synchronous implementations.
type Services struct {
	Source  decoder.StabilizerSource
	Sampler decoder.ErrorSampler
	Decoder decoder.DecodingService
}

// Session is the single owner of one lattice and its request state.
type Session struct {
	id  string
	svc Services

	mu         sync.Mutex
	state      State
	lat        *lattice.Lattice
	params     Params
	sampleBusy bool
	decodeBusy bool
}

// New returns an unbuilt session.
func New(svc Services) *Session {
	return &Session{
		id:     uuid.New().String(),
		svc:    svc,
		state:  StateUnbuilt,
		params: DefaultParams(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetParams replaces the sample/decode context.
func (s *Session) SetParams(p Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
}

// Params returns the current sample/decode context.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Rebuild fetches stabilizers for (size, code) and atomically replaces
// the lattice. All prior qubit, check and matrix state is discarded; the
// new lattice starts error-free with an all-inactive syndrome.
//
// Only one rebuild may be outstanding; a second call while the first is
// unresolved returns ErrRequestInFlight. During the fetch the session is
// in StateRebuilding and every read or toggle is rejected.
func (s *Session) Rebuild(ctx context.Context, size int, code string) error {
	s.mu.Lock()
	if s.state == StateRebuilding {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	prev := s.state
	s.state = StateRebuilding
	s.mu.Unlock()

	set, err := s.svc.Source.GetStabilizers(ctx, size, code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = prev
		return fmt.Errorf("rebuild: %w", err)
	}
	lat, err := lattice.New(lattice.NewTopology(size), code, set)
	if err != nil {
		s.state = prev
		return fmt.Errorf("rebuild: %w", err)
	}
	s.lat = lat
	s.state = StateBuilt
	slog.Info("lattice rebuilt", "session", s.id, "size", size, "code", code,
		"generation", lat.Generation())
	return nil
}

// Toggle inverts one error flag on the current lattice. The syndrome is
// recomputed before Toggle returns.
func (s *Session) Toggle(qubit int, typ lattice.ErrorType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireBuilt(); err != nil {
		return err
	}
	if qubit < 0 || qubit >= s.lat.QubitCount() {
		return fmt.Errorf("qubit %d out of range [0,%d)", qubit, s.lat.QubitCount())
	}
	s.lat.Toggle(qubit, typ)
	return nil
}

// SampleAndApply requests a random error pattern from the sampling
// service and applies it as toggles. A response that arrives after the
// lattice was rebuilt mid-flight is discarded with ErrStaleResponse.
func (s *Session) SampleAndApply(ctx context.Context) error {
	s.mu.Lock()
	if err := s.requireBuilt(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.sampleBusy {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	s.sampleBusy = true
	gen := s.lat.Generation()
	params := decoder.SampleParams{
		Size:       s.lat.Size(),
		ErrorRate:  s.params.ErrorRate,
		Deformed:   s.params.Deformed,
		ErrorModel: s.params.ErrorModel,
	}
	s.mu.Unlock()

	vec, err := s.svc.Sampler.SampleErrors(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleBusy = false
	if err != nil {
		return fmt.Errorf("sample errors: %w", err)
	}
	if s.lat == nil || s.lat.Generation() != gen {
		slog.Warn("dropping stale error sample", "session", s.id, "generation", gen)
		return ErrStaleResponse
	}
	if err := s.lat.ApplyErrorVector(vec); err != nil {
		return fmt.Errorf("apply sampled errors: %w", err)
	}
	return nil
}

// Decode sends the current syndrome and context to the decoding service
// and applies the returned correction as toggles. The correction is
// returned for display; it is not guaranteed to clear the syndrome.
// Stale responses are dropped with ErrStaleResponse and mutate nothing.
func (s *Session) Decode(ctx context.Context) (*decoder.Correction, error) {
	s.mu.Lock()
	if err := s.requireBuilt(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.decodeBusy {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.decodeBusy = true
	gen := s.lat.Generation()
	params := decoder.DecodeParams{
		Size:       s.lat.Size(),
		ErrorRate:  s.params.ErrorRate,
		MaxBPIters: s.params.MaxBPIters,
		Deformed:   s.params.Deformed,
		Decoder:    s.params.Decoder,
		ErrorModel: s.params.ErrorModel,
		Code:       s.lat.Code(),
		Syndrome:   s.lat.Syndrome(),
	}
	s.mu.Unlock()

	corr, err := s.svc.Decoder.Decode(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decodeBusy = false
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.lat == nil || s.lat.Generation() != gen {
		slog.Warn("dropping stale correction", "session", s.id, "generation", gen)
		return nil, ErrStaleResponse
	}
	if err := s.lat.ApplyCorrection(corr.X, corr.Z); err != nil {
		return nil, fmt.Errorf("apply correction: %w", err)
	}
	slog.Info("correction applied", "session", s.id,
		"residual_syndrome_weight", s.lat.Syndrome().Weight())
	return corr, nil
}

// requireBuilt must be called with the lock held.
func (s *Session) requireBuilt() error {
	switch s.state {
	case StateBuilt:
		return nil
	case StateRebuilding:
		return ErrRebuildInProgress
	default:
		return ErrNotBuilt
	}
}

// Snapshot is the full read view of a session for rendering and the API.
type Snapshot struct {
	SessionID  string          `json:"session_id"`
	State      string          `json:"state"`
	Size       int             `json:"size,omitempty"`
	Code       string          `json:"code,omitempty"`
	Generation string          `json:"generation,omitempty"`
	Params     Params          `json:"params"`
	Qubits     []lattice.Qubit `json:"qubits,omitempty"`
	Vertices   []lattice.Check `json:"vertices,omitempty"`
	Faces      []lattice.Check `json:"faces,omitempty"`
	Syndrome   []bool          `json:"syndrome,omitempty"`
}

// Snapshot returns the current view. In StateUnbuilt the lattice fields
// are empty; in StateRebuilding it returns ErrRebuildInProgress since no
// consistent view exists.
func (s *Session) Snapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &Snapshot{
		SessionID: s.id,
		State:     s.state.String(),
		Params:    s.params,
	}
	switch s.state {
	case StateRebuilding:
		return nil, ErrRebuildInProgress
	case StateUnbuilt:
		return snap, nil
	}
	snap.Size = s.lat.Size()
	snap.Code = s.lat.Code()
	snap.Generation = s.lat.Generation()
	snap.Qubits = s.lat.Qubits()
	snap.Vertices = s.lat.Vertices()
	snap.Faces = s.lat.Faces()
	snap.Syndrome = s.lat.Syndrome()
	return snap, nil
}
