package fairness

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// SeedSize is the length in bytes of a shuffle seed.
const SeedSize = 32

// domain tags keep the commitment scalar and the shuffle stream on
// independent XOFs of the same seed
var (
	commitTag  = []byte("blackjack/commit:")
	shuffleTag = []byte("blackjack/shuffle:")
)

// NewSeed draws a fresh shuffle seed from the operating system entropy pool.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return seed, nil
}

// Commitment is a publishable binding to a shuffle seed.
type Commitment struct {
	point kyber.Point
}

// Commit derives the commitment point g^H(seed) for a seed.
func Commit(seed []byte) (Commitment, error) {
	if len(seed) != SeedSize {
		return Commitment{}, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	scalar := suite.Scalar().Pick(suite.XOF(append(commitTag, seed...)))
	return Commitment{point: suite.Point().Mul(scalar, nil)}, nil
}

// Verify checks that a revealed seed matches a previously published
// commitment.
func Verify(c Commitment, seed []byte) error {
	recomputed, err := Commit(seed)
	if err != nil {
		return err
	}
	if !c.point.Equal(recomputed.point) {
		return fmt.Errorf("seed does not match commitment")
	}
	return nil
}

// String returns the hex encoding of the commitment point, the form shown
// to the player before the round.
func (c Commitment) String() string {
	if c.point == nil {
		return ""
	}
	data, err := c.point.MarshalBinary()
	if err != nil {
		return ""
	}
	return hex.EncodeToString(data)
}
