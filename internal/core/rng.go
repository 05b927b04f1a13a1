package core

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrSourceExhausted reports that a random source could not deliver bytes.
var ErrSourceExhausted = errors.New("random source exhausted")

// Source supplies the randomness used for seeding and color cycling.
type Source interface {
	// FillBinary sets every element of buf to 0 or 1.
	FillBinary(buf []uint8) error
	// Uint32n returns a value in [0, n).
	Uint32n(n uint32) (uint32, error)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values. It never fails.
func (r *RNG) FillBinary(buf []uint8) error {
	FillBinary(r.r, buf)
	return nil
}

// Uint32n returns a uniform value in [0, n). It never fails.
func (r *RNG) Uint32n(n uint32) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	return r.r.Uint32N(n), nil
}

// FillBinary fills the buffer with 0/1 values using r.
func FillBinary(r *rand.Rand, buf []uint8) {
	// One 64-bit draw covers 64 cells.
	var bits uint64
	for i := range buf {
		if i%64 == 0 {
			bits = r.Uint64()
		}
		buf[i] = uint8(bits & 1)
		bits >>= 1
	}
}

// ReaderSource draws random bits from an io.Reader, typically crypto/rand or a
// hardware RNG device.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

// NewReaderSource wraps r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// FillBinary reads len(buf)/8 bytes (rounded up) and spreads their bits over buf.
func (s *ReaderSource) FillBinary(buf []uint8) error {
	need := (len(buf) + 7) / 8
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	raw := s.buf[:need]
	if err := s.read(raw); err != nil {
		return err
	}
	for i := range buf {
		buf[i] = (raw[i/8] >> (i % 8)) & 1
	}
	return nil
}

// Uint32n returns a value in [0, n) built from four bytes of the reader.
func (s *ReaderSource) Uint32n(n uint32) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	var raw [4]byte
	if err := s.read(raw[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw[:]) % n, nil
}

func (s *ReaderSource) read(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("%w: %v", ErrSourceExhausted, err)
	}
	return nil
}
