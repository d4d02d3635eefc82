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

import "errors"

// Sentinel errors for the session service.
var (
	// ErrNotBuilt indicates an operation on a session whose lattice has
	// not been built yet.
	ErrNotBuilt = errors.New("lattice not built")

	// ErrRebuildInProgress indicates a read or mutation attempted while a
	// rebuild is outstanding.
	ErrRebuildInProgress = errors.New("lattice rebuild in progress")

	// ErrRequestInFlight indicates a second overlapping remote request of
	// the same kind before the first resolved.
	ErrRequestInFlight = errors.New("request of this kind already in flight")

	// ErrStaleResponse indicates a remote response that arrived after the
	// lattice it was issued against was rebuilt. The response is dropped;
	// no state is mutated.
	ErrStaleResponse = errors.New("stale response for rebuilt lattice dropped")
)
