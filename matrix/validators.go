// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation checks.
//   - Keep builders minimal by delegating shape/finiteness/symmetry checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the strict upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Finite → Shape → Structure).
//   - Inputs are gonum mat.Matrix values; any implementation (Dense, SymDense, views) is accepted.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// binaryZero and binaryOne are the only admissible adjacency entries.
const (
	binaryZero = 0.0
	binaryOne  = 1.0
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (rows == cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if r, c := m.Dims(); r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that every entry of m is finite.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateVecFinite checks that every entry of x is finite.
// Complexity: O(n).
func ValidateVecFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateVecFinite(%d)", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d!=%d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is square and exactly symmetric:
// A[i,j] == A[j,i] for all i<j. No tolerance is applied on purpose: the
// bound matrices must equal their own transpose bit for bit.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan the strict upper triangle in fixed i→j order; first mismatch fails.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry (tagged with the offending pair).
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m mat.Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateBinary checks that m is square and every entry is exactly 0 or 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonBinary.
// Complexity: O(n²).
//
// AI-Hints: the diagonal is checked too; a self-loop marked 1 passes here and is
// dropped by the incidence builder.
func ValidateBinary(m mat.Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := m.At(i, j); v != binaryZero && v != binaryOne {
				return validatorErrorf(fmt.Sprintf("ValidateBinary(%d,%d)", i, j), ErrNonBinary)
			}
		}
	}

	return nil
}
