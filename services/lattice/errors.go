// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lattice

import "errors"

// Sentinel errors for the lattice package.
var (
	// ErrMatrixShape indicates a stabilizer matrix whose dimensions do not
	// match the lattice's check and qubit counts.
	ErrMatrixShape = errors.New("stabilizer matrix shape mismatch")

	// ErrMatrixEntry indicates a stabilizer matrix entry outside {0, 1}.
	ErrMatrixEntry = errors.New("stabilizer matrix entry not binary")

	// ErrVectorLength indicates a correction or error vector whose length
	// does not match the lattice's qubit count.
	ErrVectorLength = errors.New("vector length mismatch")
)
