// Package knn builds the k-nearest-neighbor graph of the embedding pipeline
// over a precomputed pairwise distance matrix.
//
// Each point nominates its k closest other points (ties broken by lower index,
// the point itself never counts). The graph keeps an edge when either endpoint
// nominated the other, so the returned adjacency is symmetric, irreflexive and
// strictly 0/1; weights are not retained.
//
// Rows are scanned in parallel with a bounded errgroup; the result does not
// depend on the number of workers.
package knn
