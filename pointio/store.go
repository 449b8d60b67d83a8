package pointio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/pointgo/blobstore"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/resource"
)

// ErrTooLarge is returned by Load when a file exceeds the memory limit.
var ErrTooLarge = errors.New("pointio: file exceeds memory limit")

// Save encodes ps and writes it to name in store. A failed write removes
// whatever part of the blob was committed.
func Save(ctx context.Context, store blobstore.Store, name string, ps *pointset.PointSet, opts ...Option) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("pointio: create %s: %w", name, err)
	}

	err = Encode(wb, ps, opts...)
	if err == nil {
		err = wb.Sync()
	}
	if cerr := wb.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = store.Delete(ctx, name)
		return fmt.Errorf("pointio: save %s: %w", name, err)
	}
	return nil
}

// Load reads and decodes name from store.
//
// The blob size is reserved against the resource controller for the
// duration of the read, and the read is throttled by its IO limit.
func Load(ctx context.Context, store blobstore.Store, name string, opts ...Option) (*pointset.PointSet, error) {
	o := applyOptions(opts)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("pointio: open %s: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	reserve := blob.Size()
	if limit := o.Resources.Config().MemoryLimitBytes; limit > 0 && reserve > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, name, reserve, limit)
	}
	if err := o.Resources.AcquireMemory(ctx, reserve); err != nil {
		return nil, err
	}
	defer o.Resources.ReleaseMemory(reserve)

	var src io.Reader
	if m, ok := blob.(blobstore.Mappable); ok {
		b, err := m.Bytes()
		if err != nil {
			return nil, fmt.Errorf("pointio: map %s: %w", name, err)
		}
		src = bytes.NewReader(b)
	} else {
		rc, err := blob.ReadRange(ctx, 0, blob.Size())
		if err != nil {
			return nil, fmt.Errorf("pointio: read %s: %w", name, err)
		}
		defer func() { _ = rc.Close() }()
		src = rc
	}

	if o.Resources != nil {
		src = resource.NewRateLimitedReader(ctx, src, o.Resources)
	}

	ps, err := Decode(src)
	if err != nil {
		return nil, fmt.Errorf("pointio: decode %s: %w", name, err)
	}
	return ps, nil
}
