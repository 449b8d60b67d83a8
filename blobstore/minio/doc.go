// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is an S3-compatible object store. This package uses the official
// MinIO Go client and works with other S3-compatible systems such as Ceph,
// SeaweedFS and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "clouds/")
//	ps, err := pointio.Load(ctx, store, "bunny.pcld")
//
// # Features
//
//   - Streaming uploads for large clouds
//   - Range reads
//   - No AWS SDK dependency
package minio
