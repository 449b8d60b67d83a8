// Package pointio reads and writes point clouds in the PCLD binary format.
//
// A file starts with a 16-byte header followed by a sequence of blocks:
//
//	magic "PCLD" | version u8 | compression u8 | reserved u16 | count u64
//	block: uncompressed u32 | compressed u32 (0 = raw) | payload
//
// The concatenated block payloads hold count points as little-endian
// float64 x, y, z triples. Blocks are compressed independently with LZ4 or
// ZSTD; a block that does not shrink is stored raw.
//
// Save and Load move files through a blobstore.Store. Load reserves memory
// and throttles reads through an optional resource.Controller.
package pointio
