package pointio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/pointgo/internal/conv"
	"github.com/hupe1980/pointgo/pointset"
)

// ErrCorrupt is returned when a file is malformed.
var ErrCorrupt = errors.New("pointio: corrupt file")

const (
	// Version is the format version written by Encode.
	Version = 1

	headerSize      = 16
	blockHeaderSize = 8
	pointSize       = 24
)

var magic = [4]byte{'P', 'C', 'L', 'D'}

// Header describes a PCLD file.
type Header struct {
	Version     uint8
	Compression Compression
	Count       uint64
}

func (h Header) marshal() []byte {
	buf := make([]byte, headerSize)
	copy(buf, magic[:])
	buf[4] = h.Version
	buf[5] = byte(h.Compression)
	binary.LittleEndian.PutUint64(buf[8:], h.Count)
	return buf
}

func readHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: short header", ErrCorrupt)
		}
		return Header{}, err
	}
	if [4]byte(buf[:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrCorrupt, buf[:4])
	}

	h := Header{
		Version:     buf[4],
		Compression: Compression(buf[5]),
		Count:       binary.LittleEndian.Uint64(buf[8:]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, h.Version)
	}
	if !h.Compression.valid() {
		return Header{}, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, buf[5])
	}
	if h.Count == 0 || h.Count > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: invalid point count %d", ErrCorrupt, h.Count)
	}
	return h, nil
}

// Encode writes ps to w.
func Encode(w io.Writer, ps *pointset.PointSet, opts ...Option) error {
	if ps == nil {
		return pointset.NewArgumentError("encode", "point set", nil, "point set is nil")
	}
	o := applyOptions(opts)
	if !o.Compression.valid() {
		return pointset.NewArgumentError("encode", "compression", o.Compression, "unknown compression")
	}

	bw := bufio.NewWriter(w)
	h := Header{Version: Version, Compression: o.Compression, Count: uint64(ps.Len())}
	if _, err := bw.Write(h.marshal()); err != nil {
		return err
	}

	raw := make([]byte, 0, o.BlockPoints*pointSize)
	var bh [blockHeaderSize]byte
	for lo := 0; lo < ps.Len(); lo += o.BlockPoints {
		hi := min(lo+o.BlockPoints, ps.Len())

		raw = raw[:0]
		for i := lo; i < hi; i++ {
			p := ps.At(i)
			raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(p.X))
			raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(p.Y))
			raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(p.Z))
		}

		payload := raw
		packed := compress(raw, o.Compression)
		binary.LittleEndian.PutUint32(bh[0:], uint32(len(raw)))
		binary.LittleEndian.PutUint32(bh[4:], uint32(len(packed)))
		if packed != nil {
			payload = packed
		}

		if _, err := bw.Write(bh[:]); err != nil {
			return err
		}
		if _, err := bw.Write(payload); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode reads a point cloud from r.
func Decode(r io.Reader) (*pointset.PointSet, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	count, err := conv.Uint64ToInt(h.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	remaining := int64(count) * pointSize
	points := make([]r3.Vec, 0, min(count, MaxBlockPoints))

	var (
		bh     [blockHeaderSize]byte
		raw    []byte
		packed []byte
	)
	for remaining > 0 {
		if _, err := io.ReadFull(br, bh[:]); err != nil {
			return nil, truncated(err)
		}
		size := int64(binary.LittleEndian.Uint32(bh[0:]))
		csize := int64(binary.LittleEndian.Uint32(bh[4:]))

		switch {
		case size == 0 || size%pointSize != 0:
			return nil, fmt.Errorf("%w: block size %d is not a multiple of %d", ErrCorrupt, size, pointSize)
		case size > remaining:
			return nil, fmt.Errorf("%w: block overruns point count", ErrCorrupt)
		case size > MaxBlockPoints*pointSize:
			return nil, fmt.Errorf("%w: block of %d bytes exceeds limit", ErrCorrupt, size)
		case csize >= size:
			return nil, fmt.Errorf("%w: compressed block larger than its payload", ErrCorrupt)
		}

		raw = grow(raw, int(size))
		if csize == 0 {
			if _, err := io.ReadFull(br, raw); err != nil {
				return nil, truncated(err)
			}
		} else {
			if h.Compression == CompressionNone {
				return nil, fmt.Errorf("%w: compressed block in uncompressed file", ErrCorrupt)
			}
			packed = grow(packed, int(csize))
			if _, err := io.ReadFull(br, packed); err != nil {
				return nil, truncated(err)
			}
			if err := decompress(raw, packed, h.Compression); err != nil {
				return nil, err
			}
		}

		for off := 0; off < len(raw); off += pointSize {
			points = append(points, r3.Vec{
				X: math.Float64frombits(binary.LittleEndian.Uint64(raw[off:])),
				Y: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+8:])),
				Z: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+16:])),
			})
		}
		remaining -= size
	}

	ps, err := pointset.New(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return ps, nil
}

func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated block", ErrCorrupt)
	}
	return err
}
