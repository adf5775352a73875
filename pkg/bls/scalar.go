// Package bls wraps the BLS12-381 pairing groups used by the TPRE core.
//
// It exists to keep gnark-crypto's API surface — and its big-endian internal
// convention — out of the protocol packages, the same way the teacher keeps
// secp256k1/saferith behind pkg/math/curve.
package bls

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the canonical encoded length of a Scalar, in bytes.
const ScalarSize = fr.Bytes

// ErrScalarOutOfRange is returned when decoding 32 bytes that do not
// represent a value strictly less than the scalar field order q.
var ErrScalarOutOfRange = errors.New("bls: scalar bytes are not canonical (>= q)")

// Scalar is an element of the BLS12-381 scalar field: the integers modulo
// the prime order q shared by G1, G2 and Gt.
type Scalar struct {
	fe fr.Element
}

// Modulus returns q, the order of the scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// ScalarFromUint64 builds a small scalar, mostly useful for test fixtures
// and share indices.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.fe.SetUint64(v)
	return s
}

// RandomScalar samples a uniformly random, nonzero scalar using rand.
//
// spec.md leaves "a true nonzero scalar sampler" as an open question the
// original admits it does not implement; nube-go decides it (SPEC_FULL.md
// §9.1) by retrying the draw until it is nonzero. Each draw reads 64 bytes
// from rand and reduces them mod q.
func RandomScalar(rand io.Reader) (Scalar, error) {
	var buf [2 * ScalarSize]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return Scalar{}, fmt.Errorf("bls: sample scalar: %w", err)
		}
		v := new(big.Int).SetBytes(buf[:])
		v.Mod(v, Modulus())
		if v.Sign() != 0 {
			var fe fr.Element
			fe.SetBigInt(v)
			return Scalar{fe}, nil
		}
	}
}

// ScalarFromCanonicalBytes decodes 32 little-endian bytes into a Scalar,
// rejecting any value >= q. This is the spec.md §6 "Scalars: 32 bytes
// little-endian canonical form" encoding.
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, fmt.Errorf("bls: scalar must be %d bytes, got %d", ScalarSize, len(b))
	}
	be := reversed(b)
	if new(big.Int).SetBytes(be).Cmp(Modulus()) >= 0 {
		return Scalar{}, ErrScalarOutOfRange
	}
	var fe fr.Element
	fe.SetBytes(be)
	return Scalar{fe}, nil
}

// Bytes encodes the scalar as 32 little-endian canonical bytes.
func (s Scalar) Bytes() []byte {
	be := s.fe.Bytes()
	return reversed(be[:])
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.fe.IsZero()
}

// Equal reports whether s and other represent the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.fe.Equal(&other.fe)
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	var out Scalar
	out.fe.Add(&s.fe, &other.fe)
	return out
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	var out Scalar
	out.fe.Sub(&s.fe, &other.fe)
	return out
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	var out Scalar
	out.fe.Mul(&s.fe, &other.fe)
	return out
}

// Inverse returns s^-1. The caller must ensure s is nonzero; behavior on
// zero matches fr.Element.Inverse, which leaves the result at zero.
func (s Scalar) Inverse() Scalar {
	var out Scalar
	out.fe.Inverse(&s.fe)
	return out
}

// BigInt returns the scalar's canonical representative in [0, q).
func (s Scalar) BigInt() *big.Int {
	var z big.Int
	s.fe.ToBigIntRegular(&z)
	return &z
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
