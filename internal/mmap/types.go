package mmap

import "errors"

// AccessPattern is a paging hint passed to the kernel.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential suits decoding a point-cloud file front to back.
	AccessSequential
	// AccessRandom suits point lookups by offset.
	AccessRandom
)

var (
	ErrClosed        = errors.New("mmap: mapping is closed")
	ErrInvalidSize   = errors.New("mmap: invalid file size")
	ErrOutOfBounds   = errors.New("mmap: out of bounds")
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
