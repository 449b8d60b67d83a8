// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("clouds/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = pointio.Save(ctx, store, "bunny.pcld", ps)
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart streaming uploads for large clouds
//   - CRC32C integrity checks on single-shot puts
//   - Automatic pagination for listing
//   - Configurable prefix and custom endpoints for S3-compatible services
package s3
