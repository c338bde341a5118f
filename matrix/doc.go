// SPDX-License-Identifier: MIT

// Package matrix provides the graph-matrix plumbing of the embedding pipeline.
//
// The matrix package provides:
//
//   - Validators (square, exact symmetry, 0/1, finiteness, vector length) over
//     gonum mat.Matrix values, each returning a package sentinel error.
//   - Incidence, a sparse |E|×N signed edge-incidence matrix with O(|E|)
//     products B·x and Bᵀ·d, column dropping for gauge fixing and a
//     connected-components scan.
//   - BuildIncidence, which turns a 0/1 adjacency relation and a score vector
//     into score-oriented edges (−1 at the low-score end, +1 at the high-score end).
//
// Quick ASCII example (scores in brackets):
//
//	0[3]───1[1]
//	 │      │
//	2[0]───3[2]
//
// yields rows 1→0, 2→0, 1→3, 2→3 (tail has the lower score).
package matrix
