// Package pointgo provides farthest point sampling, random sampling and
// neighborhood queries over 3D point clouds.
//
// pointgo is the sampling-and-grouping stage of point-based geometric
// learning pipelines: pick a well-spread set of centroids, then gather the
// neighborhood of each.
//
// # Quick Start
//
//	ps, _ := pointset.FromFlat(xyz) // N×3 coordinates
//	cloud, _ := pointgo.New(ps)     // builds a kd-tree
//
//	centroids, _ := cloud.FPS(ctx, 512)
//	ball, _ := cloud.BallQuery(ctx, centroids[0], 0.2, 32)
//	knn, _ := cloud.KNN(ctx, centroids[0], 16)
//
// Or in one call:
//
//	g, _ := cloud.SampleAndGroup(ctx, pointgo.GroupConfig{
//	    Centroids: 512,
//	    Sampler:   pointgo.SamplerFPS,
//	    Grouper:   pointgo.GroupBall,
//	    Radius:    0.2,
//	    K:         32,
//	    Padding:   query.PadRepeatNearest,
//	})
//
// # Determinism
//
// FPS is fully deterministic: it starts at index 0 unless sample.WithStart
// says otherwise, and ties go to the smallest index. Random sampling takes
// an explicit seed (sample.WithSeed) or generator (sample.WithRand).
// Query results are ordered nearest first, ties by ascending index, and are
// identical for every index strategy.
//
// # Errors
//
// Every rejected input fails with an error wrapping ErrInvalidArgument;
// errors.As with *ArgumentError exposes the offending argument. No
// operation returns a partial result.
//
// # Storage
//
// Clouds persist in the PCLD format (package pointio) through any
// blobstore.Store: local files, memory, S3 or MinIO.
//
//	store := blobstore.NewLocalStore("./clouds")
//	_ = cloud.Save(ctx, store, "bunny.pcld", pointio.WithCompression(pointio.CompressionZSTD))
//	cloud, _ = pointgo.Load(ctx, store, "bunny.pcld")
package pointgo
