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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// countingSource wraps the local constructor and counts fetches.
type countingSource struct {
	calls int
	err   error
}

func (c *countingSource) GetStabilizers(ctx context.Context, size int, code string) (*lattice.StabilizerSet, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return decoder.LocalToricSource{}.GetStabilizers(ctx, size, code)
}

func testCache(t *testing.T, src decoder.StabilizerSource) *StabilizerCache {
	t.Helper()
	cache, err := NewStabilizerCache(CacheConfig{InMemory: true}, src)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestStabilizerCache_HitSkipsSource(t *testing.T) {
	src := &countingSource{}
	cache := testCache(t, src)
	ctx := context.Background()

	first, err := cache.GetStabilizers(ctx, 3, "Toric2DCode")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	second, err := cache.GetStabilizers(ctx, 3, "Toric2DCode")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "second fetch must come from cache")
	assert.Equal(t, first.Hx, second.Hx)
	assert.Equal(t, first.Hz, second.Hz)
	assert.Equal(t, first.LogicalsX, second.LogicalsX)
}

func TestStabilizerCache_DistinctKeys(t *testing.T) {
	src := &countingSource{}
	cache := testCache(t, src)
	ctx := context.Background()

	_, err := cache.GetStabilizers(ctx, 2, "Toric2DCode")
	require.NoError(t, err)
	_, err = cache.GetStabilizers(ctx, 3, "Toric2DCode")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls, "different sizes are different cache keys")
}

func TestStabilizerCache_SourceErrorPropagates(t *testing.T) {
	src := &countingSource{err: errors.New("service down")}
	cache := testCache(t, src)

	_, err := cache.GetStabilizers(context.Background(), 2, "Toric2DCode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service down")
}

func TestStabilizerCache_AsSessionSource(t *testing.T) {
	src := &countingSource{}
	cache := testCache(t, src)

	s := New(Services{Source: cache})
	require.NoError(t, s.Rebuild(context.Background(), 2, "Toric2DCode"))
	require.NoError(t, s.Rebuild(context.Background(), 2, "Toric2DCode"))
	assert.Equal(t, 1, src.calls, "repeat rebuild of a known size hits the cache")
}
