// SPDX-License-Identifier: MIT
// Package matrix — incidence builders with strict invariants.
//
// Deliverables:
//  1. Validation: adjacency square, strictly 0/1, finite score vector of matching length.
//  2. Deduplication: an unordered pair {i, j} becomes an edge when EITHER a[i,j] or a[j,i] is 1;
//     the diagonal (self-loops) is ignored.
//  3. Orientation: each edge points from the lower-score endpoint to the higher-score endpoint;
//     equal scores fall back to the lower original index (total order, reproducible signs).
//  4. Deterministic row order: strict upper triangle scanned i→j, one row per pair.
//  5. Pre-sized assembly: edges are counted first and IncidenceBuilder is allocated exactly once.
//
// Complexity:
//   - BuildIncidence: O(N²) scan of the adjacency (twice) + O(|E|) assembly, O(|E|) extra space.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// IncidenceBuilder assembles an Incidence from oriented edges into buffers
// sized up front. It is not safe for concurrent use.
type IncidenceBuilder struct {
	low  []int
	high []int
	cols int
}

// NewIncidenceBuilder allocates a builder for exactly `edges` rows over
// `vertices` columns.
//
// Errors: ErrOutOfRange when either count is negative.
func NewIncidenceBuilder(vertices, edges int) (*IncidenceBuilder, error) {
	if vertices < 0 || edges < 0 {
		return nil, fmt.Errorf("NewIncidenceBuilder(%d,%d): %w", vertices, edges, ErrOutOfRange)
	}

	return &IncidenceBuilder{
		low:  make([]int, 0, edges),
		high: make([]int, 0, edges),
		cols: vertices,
	}, nil
}

// AddEdge appends the row for edge low→high (−1 at low, +1 at high).
//
// Errors:
//   - ErrOutOfRange: endpoint outside [0, vertices), low == high, or capacity exhausted.
func (b *IncidenceBuilder) AddEdge(low, high int) error {
	if low < 0 || low >= b.cols || high < 0 || high >= b.cols {
		return fmt.Errorf("IncidenceBuilder.AddEdge(%d,%d): endpoint: %w", low, high, ErrOutOfRange)
	}
	if low == high {
		return fmt.Errorf("IncidenceBuilder.AddEdge(%d,%d): self-loop: %w", low, high, ErrOutOfRange)
	}
	if len(b.low) == cap(b.low) {
		return fmt.Errorf("IncidenceBuilder.AddEdge(%d,%d): capacity %d exhausted: %w",
			low, high, cap(b.low), ErrOutOfRange)
	}
	b.low = append(b.low, low)
	b.high = append(b.high, high)

	return nil
}

// Build returns the assembled matrix. The builder must not be reused afterwards.
func (b *IncidenceBuilder) Build() *Incidence {
	return &Incidence{low: b.low, high: b.high, cols: b.cols}
}

// BuildIncidence converts a 0/1 adjacency relation into the score-oriented
// signed incidence matrix.
//
// Implementation:
//   - Stage 1: validate adjacency (square, 0/1) and score (length N, finite).
//   - Stage 2: count unordered pairs with a[i,j]==1 || a[j,i]==1 (i<j).
//   - Stage 3: allocate IncidenceBuilder for exactly that many rows.
//   - Stage 4: emit each pair oriented by (score, index).
//
// Inputs:
//   - adj: N×N adjacency; need not be symmetric, the union of both directions is used.
//   - score: length-N ranking; lower score is the edge tail.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNonBinary (Stage 1, adjacency).
//   - ErrDimensionMismatch, ErrNaNInf (Stage 1, score).
//
// Determinism:
//   - Row order and signs depend only on (adj, score).
func BuildIncidence(adj mat.Matrix, score []float64) (*Incidence, error) {
	if err := ValidateBinary(adj); err != nil {
		return nil, fmt.Errorf("BuildIncidence: adjacency: %w", err)
	}
	n, _ := adj.Dims()
	if err := ValidateVecLen(score, n); err != nil {
		return nil, fmt.Errorf("BuildIncidence: score: %w", err)
	}
	if err := ValidateVecFinite(score); err != nil {
		return nil, fmt.Errorf("BuildIncidence: score: %w", err)
	}

	var edges int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if linked(adj, i, j) {
				edges++
			}
		}
	}

	b, err := NewIncidenceBuilder(n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildIncidence: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !linked(adj, i, j) {
				continue
			}
			low, high := Orient(i, j, score)
			if err = b.AddEdge(low, high); err != nil {
				return nil, fmt.Errorf("BuildIncidence: %w", err)
			}
		}
	}

	return b.Build(), nil
}

// linked reports whether either direction of the pair is nominated.
func linked(adj mat.Matrix, i, j int) bool {
	return adj.At(i, j) == binaryOne || adj.At(j, i) == binaryOne
}

// Orient returns the pair ordered by ascending score, ties broken by ascending index.
func Orient(a, b int, score []float64) (low, high int) {
	if score[b] < score[a] || (score[b] == score[a] && b < a) {
		return b, a
	}

	return a, b
}
