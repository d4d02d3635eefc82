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

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AleutianAI/LatticeQEC/services/lattice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("latticeqec.decoder.http")

const defaultTimeout = 2 * time.Minute

// HTTPClient speaks the JSON-over-HTTP protocol of the remote services:
//
//	POST /stabilizer-matrix  (code construction)
//	POST /new-errors         (error sampling)
//	POST /decode             (decoding)
//
// It implements StabilizerSource, ErrorSampler and DecodingService. The
// client performs no retries: a transport failure surfaces as a single
// failed operation and retry policy stays with the caller.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPClient returns a client for the service at baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// postJSON runs one round trip and decodes the response body into out.
func (c *HTTPClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request to %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request to %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("remote service call failed", "path", path, "error", err)
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s from %s: %s", ErrRemoteStatus, resp.Status, path, strings.TrimSpace(string(respBody)))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: undecodable response from %s: %v", ErrProtocolMismatch, path, err)
	}
	return nil
}

// GetStabilizers implements StabilizerSource.
//
// The response matrices are validated against the topology of the
// requested size before they are returned; a shape disagreement is a
// protocol mismatch, never silently adjusted.
func (c *HTTPClient) GetStabilizers(ctx context.Context, size int, code string) (*lattice.StabilizerSet, error) {
	ctx, span := tracer.Start(ctx, "HTTPClient.GetStabilizers")
	defer span.End()
	span.SetAttributes(attribute.Int("lattice.size", size), attribute.String("lattice.code", code))
	start := time.Now()

	var resp stabilizerResponse
	err := c.postJSON(ctx, "/stabilizer-matrix", stabilizerRequest{Size: size, Code: code}, &resp)
	if err == nil {
		set := &lattice.StabilizerSet{
			Hx:        resp.Hx,
			Hz:        resp.Hz,
			LogicalsX: resp.LogicalXs,
			LogicalsZ: resp.LogicalZs,
		}
		if verr := set.Validate(lattice.NewTopology(size)); verr != nil {
			err = fmt.Errorf("%w: %v", ErrProtocolMismatch, verr)
		} else {
			observeRequest("stabilizers", time.Since(start).Seconds(), nil)
			slog.Debug("fetched stabilizer matrices", "size", size, "code", code,
				"vertex_checks", set.Hx.Rows(), "face_checks", set.Hz.Rows())
			return set, nil
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	observeRequest("stabilizers", time.Since(start).Seconds(), err)
	return nil, err
}

// SampleErrors implements ErrorSampler.
func (c *HTTPClient) SampleErrors(ctx context.Context, params SampleParams) ([]bool, error) {
	ctx, span := tracer.Start(ctx, "HTTPClient.SampleErrors")
	defer span.End()
	span.SetAttributes(
		attribute.Int("lattice.size", params.Size),
		attribute.Float64("error.rate", params.ErrorRate),
		attribute.String("error.model", params.ErrorModel),
	)
	start := time.Now()

	var resp sampleResponse
	err := c.postJSON(ctx, "/new-errors", sampleRequest{
		Size:       params.Size,
		ErrorRate:  params.ErrorRate,
		Deformed:   params.Deformed,
		ErrorModel: params.ErrorModel,
	}, &resp)
	if err == nil {
		want := 2 * lattice.NewTopology(params.Size).QubitCount()
		if len(resp.Errors) != want {
			err = fmt.Errorf("%w: error vector has %d entries, want %d", ErrProtocolMismatch, len(resp.Errors), want)
		} else {
			observeRequest("sample", time.Since(start).Seconds(), nil)
			return resp.Errors, nil
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	observeRequest("sample", time.Since(start).Seconds(), err)
	return nil, err
}

// Decode implements DecodingService.
//
// The returned correction is shape-checked only. Whether it actually
// clears the syndrome is the decoder's business; a correction consistent
// with the syndrome but inequivalent to the true error is a valid
// outcome.
func (c *HTTPClient) Decode(ctx context.Context, params DecodeParams) (*Correction, error) {
	ctx, span := tracer.Start(ctx, "HTTPClient.Decode")
	defer span.End()
	span.SetAttributes(
		attribute.Int("lattice.size", params.Size),
		attribute.String("decoder.name", params.Decoder),
		attribute.Int("syndrome.length", len(params.Syndrome)),
	)
	start := time.Now()

	var resp decodeResponse
	err := c.postJSON(ctx, "/decode", decodeRequest{
		Size:       params.Size,
		ErrorRate:  params.ErrorRate,
		MaxBPIters: params.MaxBPIters,
		Syndrome:   params.Syndrome,
		Deformed:   params.Deformed,
		Decoder:    params.Decoder,
		ErrorModel: params.ErrorModel,
		Code:       params.Code,
	}, &resp)
	if err == nil {
		want := lattice.NewTopology(params.Size).QubitCount()
		switch {
		case len(resp.CorrectionX) != want:
			err = fmt.Errorf("%w: correction_x has %d entries, want %d", ErrProtocolMismatch, len(resp.CorrectionX), want)
		case len(resp.CorrectionZ) != want:
			err = fmt.Errorf("%w: correction_z has %d entries, want %d", ErrProtocolMismatch, len(resp.CorrectionZ), want)
		default:
			observeRequest("decode", time.Since(start).Seconds(), nil)
			slog.Debug("decode round trip complete", "decoder", params.Decoder, "size", params.Size)
			return &Correction{X: resp.CorrectionX, Z: resp.CorrectionZ}, nil
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	observeRequest("decode", time.Since(start).Seconds(), err)
	return nil, err
}
