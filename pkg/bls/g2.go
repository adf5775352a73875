package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2PointSize is the compressed encoding length of a G2 point, in bytes.
const G2PointSize = 96

// G2Point is an element of G2, the group holding RecipientPublicKey, the
// Params generator h, and the reencryption_key_parts / KeyFrag points.
type G2Point struct {
	pt bls12381.G2Affine
}

// G2Generator returns the canonical generator h of G2.
func G2Generator() G2Point {
	_, _, _, g2Aff := bls12381.Generators()
	return G2Point{g2Aff}
}

// ActScalar returns g^s, i.e. the point g raised to s.
func (g G2Point) ActScalar(s Scalar) G2Point {
	var out bls12381.G2Affine
	out.ScalarMultiplication(&g.pt, s.BigInt())
	return G2Point{out}
}

// Add returns the G2 group sum of g and other.
func (g G2Point) Add(other G2Point) G2Point {
	var out bls12381.G2Affine
	out.Add(&g.pt, &other.pt)
	return G2Point{out}
}

// Equal reports whether g and other encode the same point.
func (g G2Point) Equal(other G2Point) bool {
	return g.pt.Equal(&other.pt)
}

// Bytes returns the 96-byte compressed encoding of g (spec.md §6).
func (g G2Point) Bytes() []byte {
	b := g.pt.Bytes()
	return b[:]
}

// G2FromBytes decodes a compressed G2 point.
func G2FromBytes(b []byte) (G2Point, error) {
	if len(b) != G2PointSize {
		return G2Point{}, fmt.Errorf("bls: G2 point must be %d bytes, got %d", G2PointSize, len(b))
	}
	var out bls12381.G2Affine
	if err := out.Unmarshal(b); err != nil {
		return G2Point{}, fmt.Errorf("bls: decode G2 point: %w", err)
	}
	return G2Point{out}, nil
}

func (g G2Point) affine() bls12381.G2Affine {
	return g.pt
}
