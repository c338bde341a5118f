// Package solver finds the angle of every point by projected gradient descent.
//
// Problem:
//
//	minimize ½‖Bx − P(Bx)‖²   over x ∈ ℝ^(N−1)
//
// where B is the |E|×N signed incidence matrix with the gauge column removed,
// and P clamps every edge's signed angular difference into its [lower, upper]
// interval (box projection). The gradient is Bᵀ(Bx − P(Bx)); the fixed step
//
//	γ = 1 / (2 · max diag(BᵀB))
//
// is computed once from the largest vertex degree. The gauge vertex is pinned at
// angle 0 because the objective is invariant under a global rotation.
//
// Algorithm Outline:
//  1. d = Bx − P(Bx)
//  2. err = ‖Bᵀd‖ / √(N−1), appended to the error history
//  3. every CheckEvery iterations (iteration 0 included): stop when err < Tol
//  4. x ← x − γ·Bᵀd
//
// Running out of iterations is not an error: Result.Converged is false and x is
// the best effort. A graph whose reduced incidence has no nonzero column makes γ
// undefined and fails with ErrDegenerateGraph.
//
// Complexity:
//
//	Time   = O(MaxIter · (|E| + N))
//	Memory = O(|E| + N + MaxIter) (history included)
package solver
