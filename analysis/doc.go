// Package analysis compares sampling and query strategies on a point cloud.
//
// Partition splits the union of a ball query result and a kNN result into
// the points both strategies found and the points only one of them found.
// MinPairwiseDistance and CoverageRadius measure how well a selection spreads
// over the cloud, and Trials repeats FPS and random sampling to compare the
// two on those measures.
package analysis
