package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1PointSize is the compressed encoding length of a G1 point, in bytes.
const G1PointSize = 48

// G1Point is an element of G1, the source group holding Capsules and the
// Params generator g.
type G1Point struct {
	pt bls12381.G1Affine
}

// G1Generator returns the canonical generator g of G1.
func G1Generator() G1Point {
	_, _, g1Aff, _ := bls12381.Generators()
	return G1Point{g1Aff}
}

// ActScalar returns g^s, i.e. the point g raised to s.
func (g G1Point) ActScalar(s Scalar) G1Point {
	var out bls12381.G1Affine
	out.ScalarMultiplication(&g.pt, s.BigInt())
	return G1Point{out}
}

// Add returns the G1 group sum of g and other.
func (g G1Point) Add(other G1Point) G1Point {
	var out bls12381.G1Affine
	out.Add(&g.pt, &other.pt)
	return G1Point{out}
}

// Equal reports whether g and other encode the same point.
func (g G1Point) Equal(other G1Point) bool {
	return g.pt.Equal(&other.pt)
}

// Bytes returns the 48-byte compressed encoding of g (spec.md §6).
func (g G1Point) Bytes() []byte {
	b := g.pt.Bytes()
	return b[:]
}

// G1FromBytes decodes a compressed G1 point.
func G1FromBytes(b []byte) (G1Point, error) {
	if len(b) != G1PointSize {
		return G1Point{}, fmt.Errorf("bls: G1 point must be %d bytes, got %d", G1PointSize, len(b))
	}
	var out bls12381.G1Affine
	if err := out.Unmarshal(b); err != nil {
		return G1Point{}, fmt.Errorf("bls: decode G1 point: %w", err)
	}
	return G1Point{out}, nil
}

func (g G1Point) affine() bls12381.G1Affine {
	return g.pt
}
