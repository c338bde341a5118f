package knn

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// candidate pairs a point index with its distance to the query row.
type candidate struct {
	dist float64
	idx  int
}

// Search returns, for every row i of dm, the indices of its k nearest other
// points in ascending (distance, index) order.
//
// When k ≥ N it is clamped to N−1 and a warning is logged; with N == 1 every
// neighbor list is empty.
//
// Errors: ErrInvalidK, ErrEmpty, ErrOptionViolation, matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
func Search(dm mat.Matrix, k int, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k < 1 {
		return nil, fmt.Errorf("Search: k=%d: %w", k, ErrInvalidK)
	}
	if err := matrix.ValidateSquare(dm); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	if err := matrix.ValidateFinite(dm); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	n, _ := dm.Dims()
	if n == 0 {
		return nil, fmt.Errorf("Search: %w", ErrEmpty)
	}
	if k > n-1 {
		o.Logger.Warn("neighbor count clamped", slog.Int("requested", k), slog.Int("used", n-1))
		k = n - 1
	}

	neighbors := make([][]int, n)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			neighbors[i] = nearest(dm, i, k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	return neighbors, nil
}

// nearest scans row i and keeps the k closest other indices.
func nearest(dm mat.Matrix, i, k int) []int {
	n, _ := dm.Dims()
	cands := make([]candidate, 0, n-1)
	for j := 0; j < n; j++ {
		if j == i {
			continue // a point is never its own neighbor
		}
		cands = append(cands, candidate{dist: dm.At(i, j), idx: j})
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].idx < cands[b].idx
	})

	out := make([]int, k)
	for r := 0; r < k; r++ {
		out[r] = cands[r].idx
	}

	return out
}

// Graph returns the N×N 0/1 adjacency of the k-nearest-neighbor graph of dm:
// a[i,j] = a[j,i] = 1 when i nominated j or j nominated i.
//
// Errors: as Search.
func Graph(dm mat.Matrix, k int, opts ...Option) (*mat.Dense, error) {
	neighbors, err := Search(dm, k, opts...)
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	n := len(neighbors)
	adj := mat.NewDense(n, n, nil)
	for i, row := range neighbors {
		for _, j := range row {
			adj.Set(i, j, 1)
			adj.Set(j, i, 1)
		}
	}

	return adj, nil
}
