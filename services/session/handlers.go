// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// RebuildRequest is the body of POST /v1/lattice.
type RebuildRequest struct {
	Size int    `json:"size" binding:"required,min=1,max=50"`
	Code string `json:"code" binding:"required,knowncode"`
}

// ToggleRequest is the body of POST /v1/lattice/toggle.
type ToggleRequest struct {
	Qubit int    `json:"qubit" binding:"min=0"`
	Type  string `json:"type" binding:"required,oneof=X Z"`
}

// ParamsRequest is the body of PUT /v1/params.
type ParamsRequest struct {
	ErrorRate  float64 `json:"p" binding:"min=0,max=1"`
	MaxBPIters int     `json:"max_bp_iter" binding:"min=0"`
	Deformed   bool    `json:"deformed"`
	Decoder    string  `json:"decoder" binding:"required,knowndecoder"`
	ErrorModel string  `json:"error_model" binding:"required,knownerrormodel"`
}

// DecodeResponse is the body returned by POST /v1/decode.
type DecodeResponse struct {
	CorrectionX []bool    `json:"correction_x"`
	CorrectionZ []bool    `json:"correction_z"`
	Snapshot    *Snapshot `json:"snapshot"`
}

// statusFor maps session and protocol errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrRequestInFlight),
		errors.Is(err, ErrRebuildInProgress),
		errors.Is(err, ErrNotBuilt),
		errors.Is(err, ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, decoder.ErrProtocolMismatch),
		errors.Is(err, decoder.ErrRemoteStatus):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func handleGetLattice(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := s.Snapshot()
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func handleRebuild(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RebuildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := s.Rebuild(c.Request.Context(), req.Size, req.Code); err != nil {
			abortWith(c, err)
			return
		}
		snap, err := s.Snapshot()
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func handleToggle(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		typ, err := lattice.ParseErrorType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := s.Toggle(req.Qubit, typ); err != nil {
			if errors.Is(err, ErrNotBuilt) || errors.Is(err, ErrRebuildInProgress) {
				abortWith(c, err)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		snap, err := s.Snapshot()
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func handleSetParams(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParamsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.SetParams(Params{
			ErrorRate:  req.ErrorRate,
			MaxBPIters: req.MaxBPIters,
			Deformed:   req.Deformed,
			Decoder:    req.Decoder,
			ErrorModel: req.ErrorModel,
		})
		c.JSON(http.StatusOK, s.Params())
	}
}

func handleSampleErrors(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.SampleAndApply(c.Request.Context()); err != nil {
			abortWith(c, err)
			return
		}
		snap, err := s.Snapshot()
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func handleDecode(s *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		corr, err := s.Decode(c.Request.Context())
		if err != nil {
			abortWith(c, err)
			return
		}
		snap, err := s.Snapshot()
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, DecodeResponse{
			CorrectionX: corr.X,
			CorrectionZ: corr.Z,
			Snapshot:    snap,
		})
	}
}
