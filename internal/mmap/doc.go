// Package mmap provides read-only memory-mapped file access.
//
// blobstore.LocalStore maps point-cloud files instead of reading them, so a
// load decodes straight from the page cache.
//
//	m, err := mmap.Open("bunny.pcld")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile, Advise is a no-op
//
// A Mapping is safe for concurrent reads. Close is idempotent, but
// callers must not touch a slice from Bytes after Close returns.
package mmap
