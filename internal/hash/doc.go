// Package hash provides CRC32-Castagnoli (CRC32C) checksums for blob uploads.
//
// Go's crc32 package uses hardware instructions (SSE4.2, ARM CRC) when
// available.
//
//	checksum := hash.CRC32C(data)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	header := hash.Base64(h.Sum32())
package hash
