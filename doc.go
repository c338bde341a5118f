// Package mode computes MoDE (Multi-objective Data Embedding) layouts: 2D
// embeddings that keep every point at its own feature norm, order points by a
// scalar score along the angle, and respect per-pair distance bounds.
//
// What the pipeline does:
//
//	• Bound translation: law of cosines turns distance bounds into cosine bounds
//	• Neighbor graph: k nearest neighbors under the average distance, made undirected
//	• Incidence: each edge oriented from the lower-score end to the higher-score end
//	• Angular bounds: arccos of the cosine bounds, per edge
//	• Solver: projected gradient descent with the lowest-score point pinned at 0
//	• Reconstruction: (norm·cos θ, norm·sin θ)
//
// Subpackages:
//
//	bounds/  — row norms, distance → correlation → angle bound translation
//	embed/   — the FitTransform entry point, options and reconstruction
//	knn/     — parallel k-nearest-neighbor search and the symmetric graph
//	matrix/  — validators and the sparse signed incidence matrix
//	quality/ — embedding metrics (distance correlation, Kendall tau, bound checks)
//	solver/  — projected gradient descent over edge angle intervals
//
// Quick ASCII example (scores in brackets, radius = feature norm):
//
//	        2[9]  .
//	      .        1[5]
//	    .            .
//	  3[12]          0[1] ──── θ = 0
//
// Lower scores sit at smaller angles; the lowest one defines θ = 0.
//
//	go get github.com/katalvlaran/mode
package mode
