// Package quality scores a finished embedding against its inputs.
//
// DistanceCorrelation and ScoreOrderCorrelation measure how well pairwise
// distances and the score ordering survive the projection to 2D;
// BoundSatisfaction and NormError check the constraints the solver was given.
// All metrics are read-only and allocate O(N²) at most.
package quality
