package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/pointgo/internal/hash"
)

const contentType = "application/octet-stream"

// UploadConfig tunes how point-cloud files are written to S3.
type UploadConfig struct {
	// PartSize is the multipart chunk size in bytes. A compressed cloud below
	// this size goes up in a single part.
	PartSize int64

	// Concurrency is the number of parts uploaded in parallel.
	Concurrency int

	// EnableChecksum attaches CRC32C checksums so S3 rejects corrupted parts.
	EnableChecksum bool

	// LeavePartsOnError keeps uploaded parts of a failed multipart upload.
	LeavePartsOnError bool
}

// DefaultUploadConfig returns 8 MiB parts, 5 concurrent uploads and CRC32C on.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:       8 << 20,
		Concurrency:    5,
		EnableChecksum: true,
	}
}

func newUploader(client Client, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = cfg.PartSize
		u.Concurrency = cfg.Concurrency
		u.LeavePartsOnError = cfg.LeavePartsOnError
	})
}

func computeCRC32C(data []byte) string {
	return hash.Base64(hash.CRC32C(data))
}

func putInput(bucket, key string, body io.Reader) *s3.PutObjectInput {
	return &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
}

// streamingWritableBlob feeds writes through a pipe into a multipart upload
// running in the background. The object appears once Close returns nil.
type streamingWritableBlob struct {
	key string
	pw  *io.PipeWriter

	done chan error

	once     sync.Once
	mu       sync.Mutex
	closed   bool
	closeErr error
}

func newStreamingWritableBlob(ctx context.Context, uploader *manager.Uploader, bucket, key string, checksum bool) *streamingWritableBlob {
	pr, pw := io.Pipe()

	input := putInput(bucket, key, pr)
	if checksum {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}

	b := &streamingWritableBlob{key: key, pw: pw, done: make(chan error, 1)}

	go func() {
		_, err := uploader.Upload(ctx, input)
		// Unblock a writer stuck on a failed upload.
		_ = pr.CloseWithError(err)
		b.done <- err
	}()

	return b
}

func (b *streamingWritableBlob) Write(p []byte) (int, error) {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()

	if closed {
		return 0, io.ErrClosedPipe
	}

	n, err := b.pw.Write(p)
	if err != nil {
		return n, fmt.Errorf("s3: upload %s: %w", b.key, err)
	}
	return n, nil
}

// Sync is a no-op; nothing is durable before Close.
func (b *streamingWritableBlob) Sync() error { return nil }

func (b *streamingWritableBlob) Close() error {
	b.once.Do(func() {
		b.mu.Lock()
		b.closed = true
		b.mu.Unlock()

		if err := b.pw.Close(); err != nil {
			b.closeErr = fmt.Errorf("s3: upload %s: %w", b.key, err)
			return
		}
		if err := <-b.done; err != nil {
			b.closeErr = fmt.Errorf("s3: upload %s: %w", b.key, err)
		}
	})
	return b.closeErr
}

func putWithChecksum(ctx context.Context, client Client, bucket, key string, data []byte, checksum bool) error {
	input := putInput(bucket, key, bytes.NewReader(data))
	input.ContentLength = aws.Int64(int64(len(data)))
	if checksum {
		input.ChecksumCRC32C = aws.String(computeCRC32C(data))
	}

	_, err := client.PutObject(ctx, input)
	return err
}
