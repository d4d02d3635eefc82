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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
	"github.com/AleutianAI/LatticeQEC/services/lattice"
)

// CacheConfig configures the embedded stabilizer cache.
type CacheConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is true.
	Path string

	// InMemory disables disk persistence. Used by tests.
	InMemory bool

	// SyncWrites enables synchronous writes. Stabilizer sets are cheap to
	// refetch, so this defaults to off.
	SyncWrites bool
}

// StabilizerCache decorates a StabilizerSource with an embedded BadgerDB
// cache keyed by (code, size).
//
// Stabilizer matrices are fixed for a given (size, code) pair, which
// makes them safe to cache indefinitely: a hit skips the remote fetch
// entirely on rebuilds the user has done before. Cache read or write
// failures degrade to the wrapped source and are logged, never returned.
type StabilizerCache struct {
	db     *badger.DB
	source decoder.StabilizerSource
}

// NewStabilizerCache opens the cache database and wraps source.
func NewStabilizerCache(cfg CacheConfig, source decoder.StabilizerSource) (*StabilizerCache, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open stabilizer cache: %w", err)
	}
	return &StabilizerCache{db: db, source: source}, nil
}

// Close releases the cache database.
func (c *StabilizerCache) Close() error {
	return c.db.Close()
}

func cacheKey(size int, code string) []byte {
	return []byte(fmt.Sprintf("stab/%s/%d", code, size))
}

// GetStabilizers implements decoder.StabilizerSource.
func (c *StabilizerCache) GetStabilizers(ctx context.Context, size int, code string) (*lattice.StabilizerSet, error) {
	key := cacheKey(size, code)

	var cached []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		cached, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == nil:
		var set lattice.StabilizerSet
		if uerr := json.Unmarshal(cached, &set); uerr == nil {
			if verr := set.Validate(lattice.NewTopology(size)); verr == nil {
				slog.Debug("stabilizer cache hit", "size", size, "code", code)
				return &set, nil
			}
		}
		// Corrupt entry: fall through to refetch and overwrite.
		slog.Warn("discarding corrupt stabilizer cache entry", "size", size, "code", code)
	case !errors.Is(err, badger.ErrKeyNotFound):
		slog.Warn("stabilizer cache read failed", "error", err)
	}

	set, err := c.source.GetStabilizers(ctx, size, code)
	if err != nil {
		return nil, err
	}

	if encoded, merr := json.Marshal(set); merr == nil {
		if werr := c.db.Update(func(txn *badger.Txn) error {
			return txn.Set(key, encoded)
		}); werr != nil {
			slog.Warn("stabilizer cache write failed", "error", werr)
		}
	}
	return set, nil
}
