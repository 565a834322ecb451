package fairness

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"go.dedis.ch/kyber/v4"
)

// Stream is a deterministic randomness source derived from a shuffle seed.
// It satisfies deck.Randomizer; the same seed always produces the same
// sequence of indices, which is what makes a revealed seed verifiable.
type Stream struct {
	xof kyber.XOF
}

// NewStream derives the shuffle stream for a seed.
func NewStream(seed []byte) (*Stream, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return &Stream{xof: suite.XOF(append(shuffleTag, seed...))}, nil
}

// Intn returns a uniform value in [0, n). Rejection sampling keeps the
// distribution unbiased for every n.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("fairness: Intn called with non-positive n")
	}
	limit := math.MaxUint64 - math.MaxUint64%uint64(n)
	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
			// The XOF never runs dry; a read failure means a broken suite.
			panic(fmt.Sprintf("fairness: xof read: %v", err))
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % uint64(n))
		}
	}
}
