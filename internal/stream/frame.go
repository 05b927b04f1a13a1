package stream

import (
	"encoding/binary"
	"errors"
	"fmt"

	"matrix-life/internal/core"
)

const (
	// HeaderSize is the length of the fixed frame header.
	HeaderSize = 24
	// MaxSide is the largest width or height the header can carry.
	MaxSide = 0xFFFF
)

var magic = [4]byte{'L', 'I', 'F', 'E'}

var (
	// ErrBadFrame reports a message that does not decode as a frame.
	ErrBadFrame = errors.New("stream: malformed frame")
	// ErrFrameTooLarge reports a grid side that does not fit the header.
	ErrFrameTooLarge = errors.New("stream: frame too large")
)

// AppendFrame encodes f onto dst: a big-endian header followed by the cells
// packed eight per byte, most significant bit first, row-major. Sides above
// MaxSide are rejected and dst is returned unchanged.
func AppendFrame(dst []byte, f core.Frame) ([]byte, error) {
	if f.Size.W > MaxSide || f.Size.H > MaxSide {
		return dst, fmt.Errorf("%w: %dx%d exceeds %d per side", ErrFrameTooLarge, f.Size.W, f.Size.H, MaxSide)
	}
	var hdr [HeaderSize]byte
	copy(hdr[0:4], magic[:])
	binary.BigEndian.PutUint16(hdr[4:6], uint16(f.Size.W))
	binary.BigEndian.PutUint16(hdr[6:8], uint16(f.Size.H))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(f.Generation))
	binary.BigEndian.PutUint32(hdr[12:16], uint32(f.Alive))
	binary.BigEndian.PutUint32(hdr[16:20], uint32(f.Epoch))
	binary.BigEndian.PutUint32(hdr[20:24], f.Foreground)
	dst = append(dst, hdr[:]...)

	var b byte
	for i, c := range f.Cells {
		b = b<<1 | c&1
		if i%8 == 7 {
			dst = append(dst, b)
			b = 0
		}
	}
	if rem := len(f.Cells) % 8; rem != 0 {
		dst = append(dst, b<<(8-rem))
	}
	return dst, nil
}

// DecodeFrame parses a message produced by AppendFrame. Reseeded is not
// carried on the wire and is always false.
func DecodeFrame(msg []byte) (core.Frame, error) {
	if len(msg) < HeaderSize || [4]byte(msg[0:4]) != magic {
		return core.Frame{}, fmt.Errorf("%w: bad header", ErrBadFrame)
	}
	f := core.Frame{
		Size: core.Size{
			W: int(binary.BigEndian.Uint16(msg[4:6])),
			H: int(binary.BigEndian.Uint16(msg[6:8])),
		},
		Generation: int(binary.BigEndian.Uint32(msg[8:12])),
		Alive:      int(binary.BigEndian.Uint32(msg[12:16])),
		Epoch:      int(binary.BigEndian.Uint32(msg[16:20])),
		Foreground: binary.BigEndian.Uint32(msg[20:24]),
	}
	n := f.Size.Cells()
	body := msg[HeaderSize:]
	if len(body) != (n+7)/8 {
		return core.Frame{}, fmt.Errorf("%w: %d body bytes for %d cells", ErrBadFrame, len(body), n)
	}
	f.Cells = make([]uint8, n)
	for i := range f.Cells {
		f.Cells[i] = (body[i/8] >> (7 - i%8)) & 1
	}
	return f, nil
}
