// Package conv provides safe integer type conversion utilities.
//
// Point indices live in uint32 bitmaps and point counts arrive as uint64
// from file headers; these helpers reject values that do not fit.
package conv
