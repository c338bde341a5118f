// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every check returns one of these sentinels (wrapped with an
// operation tag) and tests match them via errors.Is. No exported function
// panics on user-triggered input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Op: %w", ErrX); callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> NaN/Inf -> shape -> dimension mismatch -> structural violations.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. a score vector whose length differs from the adjacency order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be exactly symmetric was not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonBinary signals an adjacency entry outside {0, 1}.
	ErrNonBinary = errors.New("matrix: not a 0-1 matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row, column, edge or vertex index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDisconnected indicates that an incidence graph has more than one connected component
	// and the caller asked for strict connectivity.
	ErrDisconnected = errors.New("matrix: graph is disconnected")
)
