// Package embed computes interpretable 2D embeddings under uncertain distance
// information.
//
// Every point i is placed on the circle of radius ‖x_i‖ (its feature norm) at an
// angle θ_i, so the embedding preserves norms exactly. Angles are chosen so that,
// along the edges of a k-nearest-neighbor graph, the angular difference of two
// points lies within the interval implied by their distance bounds through the
// law of cosines. Edges point from the lower-score to the higher-score endpoint,
// which makes the angle a proxy for the score ranking.
//
// Pipeline (one blocking call, no shared state between calls):
//
//	norms        bounds.RowNorms
//	cm_ub, cm_lb bounds.Correlation
//	adjacency    knn.Graph over (dm_ub + dm_lb)/2
//	incidence    matrix.BuildIncidence (score-oriented)
//	[r_lb, r_ub] bounds.EdgeAngles
//	angles       solver.Solve (gauge: lowest-score point at 0)
//	embedding    Reconstruct
//
// ⚙️ Usage:
//
//	e, err := embed.New(embed.WithNeighbors(10), embed.WithMaxIter(100000), embed.WithTolerance(1e-4))
//	res, err := e.FitTransform(data, score, dmUB, dmLB)
//	// res.Embedding is N×2; pass the same matrix twice for exact distances.
package embed
