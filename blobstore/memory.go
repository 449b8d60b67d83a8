package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps point-cloud files in process memory. It backs tests and
// the facade when no durable store is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("blobstore: open %s: %w", name, ErrNotFound)
	}

	// Stored slices are replaced, never mutated.
	return &memoryBlob{data: data, r: bytes.NewReader(data)}, nil
}

func (m *MemoryStore) Create(_ context.Context, name string) (WritableBlob, error) {
	if name == "" {
		return nil, errors.New("blobstore: empty blob name")
	}
	return &memoryWritableBlob{store: m, name: name}, nil
}

func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	if name == "" {
		return errors.New("blobstore: empty blob name")
	}
	m.store(name, bytes.Clone(data))
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	delete(m.blobs, name)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := slices.Collect(maps.Keys(m.blobs))
	names = slices.DeleteFunc(names, func(n string) bool { return !strings.HasPrefix(n, prefix) })
	slices.Sort(names)
	return names, nil
}

func (m *MemoryStore) store(name string, data []byte) {
	m.mu.Lock()
	m.blobs[name] = data
	m.mu.Unlock()
}

type memoryBlob struct {
	data []byte
	r    *bytes.Reader
}

func (b *memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("blobstore: negative offset %d", off)
	}
	return b.r.ReadAt(p, off)
}

func (b *memoryBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || length < 0 {
		return nil, fmt.Errorf("blobstore: invalid range [%d, +%d)", off, length)
	}
	return io.NopCloser(io.NewSectionReader(b.r, off, length)), nil
}

func (b *memoryBlob) Bytes() ([]byte, error) { return b.data, nil }
func (b *memoryBlob) Size() int64            { return int64(len(b.data)) }
func (b *memoryBlob) Close() error           { return nil }

// memoryWritableBlob publishes its buffer on Close.
type memoryWritableBlob struct {
	store  *MemoryStore
	name   string
	buf    bytes.Buffer
	closed bool
}

func (w *memoryWritableBlob) Write(p []byte) (int, error) {
	if w.closed {
		return 0, io.ErrClosedPipe
	}
	return w.buf.Write(p)
}

func (w *memoryWritableBlob) Sync() error {
	if w.closed {
		return io.ErrClosedPipe
	}
	return nil
}

func (w *memoryWritableBlob) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.store.store(w.name, bytes.Clone(w.buf.Bytes()))
	return nil
}
