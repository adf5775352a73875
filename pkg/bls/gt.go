package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GTSize is the encoded length of a Gt element, in bytes (spec.md §6: the
// standard serialization of the towered target-field element).
const GTSize = 576

// GTElement is an element of Gt, the pairing target group. EncryptionKey,
// SymmetricKey and the point carried by a CapsuleFrag all live here.
type GTElement struct {
	fe bls12381.GT
}

// Pair computes the bilinear pairing e(g1, g2) ∈ Gt.
func Pair(g1 G1Point, g2 G2Point) (GTElement, error) {
	gt, err := bls12381.Pair([]bls12381.G1Affine{g1.affine()}, []bls12381.G2Affine{g2.affine()})
	if err != nil {
		return GTElement{}, fmt.Errorf("bls: pairing: %w", err)
	}
	return GTElement{gt}, nil
}

// Exp returns z^s.
func (z GTElement) Exp(s Scalar) GTElement {
	var out bls12381.GT
	out.Exp(z.fe, s.BigInt())
	return GTElement{out}
}

// Mul returns the Gt group operation of z and other. spec.md describes
// EncryptionKey aggregation and CapsuleFrag combination using additive
// notation ("sum of shares in Gt"); that sum is this multiplication, since
// Gt is written multiplicatively here (z^a "+" z^b corresponds to z^a * z^b
// = z^(a+b)).
func (z GTElement) Mul(other GTElement) GTElement {
	var out bls12381.GT
	out.Mul(&z.fe, &other.fe)
	return GTElement{out}
}

// Equal reports whether z and other encode the same element.
func (z GTElement) Equal(other GTElement) bool {
	return z.fe.Equal(&other.fe)
}

// Bytes returns the 576-byte encoding of z (spec.md §6).
func (z GTElement) Bytes() []byte {
	return z.fe.Marshal()
}

// GTFromBytes decodes a Gt element.
func GTFromBytes(b []byte) (GTElement, error) {
	if len(b) != GTSize {
		return GTElement{}, fmt.Errorf("bls: Gt element must be %d bytes, got %d", GTSize, len(b))
	}
	var fe bls12381.GT
	if err := fe.Unmarshal(b); err != nil {
		return GTElement{}, fmt.Errorf("bls: decode Gt element: %w", err)
	}
	return GTElement{fe}, nil
}
