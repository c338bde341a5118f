// Package bounds translates pairwise distance bounds into the angular bounds
// used by the embedding solver.
//
// Every point i lives on a circle of radius ‖x_i‖. By the law of cosines two
// such points at distance d satisfy
//
//	cos θ_ij = (‖x_i‖² + ‖x_j‖² − d²) / (2‖x_i‖‖x_j‖)
//
// so a distance interval [d_lb, d_ub] becomes a correlation interval
// [c_lb, c_ub] (the map is decreasing: d_ub feeds c_lb) and, through arccos,
// an angular-difference interval [r_lb, r_ub] = [acos c_ub, acos c_lb].
//
// Pipeline pieces:
//   - RowNorms        — Euclidean norm per feature row, zero norms rejected.
//   - Correlation     — N×N correlation bounds from norms and distance bounds.
//   - AverageDistance — (d_ub + d_lb)/2, the metric used for the neighbor graph.
//   - EdgeAngles      — per-edge angular bounds gathered along an incidence matrix.
package bounds
