// Package resource bounds the work pointgo does outside the core algorithms.
//
// A Controller caps three things:
//
//   - memory reserved for decoded point clouds (pointio.Load)
//   - concurrent neighborhood workers (pointgo.Cloud.SampleAndGroup)
//   - bytes per second read from or written to a blob store
//
// A nil *Controller imposes no limits.
package resource
