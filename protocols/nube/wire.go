package nube

import (
	"encoding/binary"
	"fmt"

	"github.com/nucypher/nube-go/pkg/bls"
)

// KeyFragWireSize is the fixed encoded length of a KeyFrag: scalar ‖ G2
// point (spec.md §6).
const KeyFragWireSize = bls.ScalarSize + bls.G2PointSize

// Bytes encodes a KeyFrag as scalar ‖ G2 point.
func (f KeyFrag) Bytes() []byte {
	out := make([]byte, 0, KeyFragWireSize)
	out = append(out, f.SharedValue.Bytes()...)
	out = append(out, f.Point.Bytes()...)
	return out
}

// KeyFragFromBytes decodes a KeyFrag encoded by Bytes.
func KeyFragFromBytes(b []byte) (KeyFrag, error) {
	if len(b) != KeyFragWireSize {
		return KeyFrag{}, fmt.Errorf("nube: key frag must be %d bytes, got %d", KeyFragWireSize, len(b))
	}
	sv, err := bls.ScalarFromCanonicalBytes(b[:bls.ScalarSize])
	if err != nil {
		return KeyFrag{}, fmt.Errorf("nube: decode key frag shared value: %w", err)
	}
	pt, err := bls.G2FromBytes(b[bls.ScalarSize:])
	if err != nil {
		return KeyFrag{}, fmt.Errorf("nube: decode key frag point: %w", err)
	}
	return KeyFrag{SharedValue: sv, Point: pt}, nil
}

// CapsuleFragWireSize is the fixed encoded length of a CapsuleFrag: scalar
// ‖ Gt element (spec.md §6).
const CapsuleFragWireSize = bls.ScalarSize + bls.GTSize

// Bytes encodes a CapsuleFrag as scalar ‖ Gt element.
func (f CapsuleFrag) Bytes() []byte {
	out := make([]byte, 0, CapsuleFragWireSize)
	out = append(out, f.SharedValue.Bytes()...)
	out = append(out, f.Point.Bytes()...)
	return out
}

// CapsuleFragFromBytes decodes a CapsuleFrag encoded by Bytes.
func CapsuleFragFromBytes(b []byte) (CapsuleFrag, error) {
	if len(b) != CapsuleFragWireSize {
		return CapsuleFrag{}, fmt.Errorf("nube: capsule frag must be %d bytes, got %d", CapsuleFragWireSize, len(b))
	}
	sv, err := bls.ScalarFromCanonicalBytes(b[:bls.ScalarSize])
	if err != nil {
		return CapsuleFrag{}, fmt.Errorf("nube: decode capsule frag shared value: %w", err)
	}
	pt, err := bls.GTFromBytes(b[bls.ScalarSize:])
	if err != nil {
		return CapsuleFrag{}, fmt.Errorf("nube: decode capsule frag point: %w", err)
	}
	return CapsuleFrag{SharedValue: sv, Point: pt}, nil
}

// Bytes encodes a KeySliver as a length-prefixed sequence of shared_values
// followed by a length-prefixed sequence of G2 points (spec.md §6). Each
// length prefix is a big-endian uint32 element count.
func (s KeySliver) Bytes() []byte {
	out := make([]byte, 0, 4+len(s.SharedValues)*bls.ScalarSize+4+len(s.ReencryptionKeyParts)*bls.G2PointSize)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s.SharedValues)))
	out = append(out, lenBuf[:]...)
	for _, x := range s.SharedValues {
		out = append(out, x.Bytes()...)
	}

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s.ReencryptionKeyParts)))
	out = append(out, lenBuf[:]...)
	for _, p := range s.ReencryptionKeyParts {
		out = append(out, p.Bytes()...)
	}
	return out
}

// KeySliverFromBytes decodes a KeySliver encoded by Bytes.
func KeySliverFromBytes(b []byte) (KeySliver, error) {
	if len(b) < 4 {
		return KeySliver{}, fmt.Errorf("nube: key sliver truncated before shared_values length")
	}
	n := binary.BigEndian.Uint32(b[:4])
	b = b[4:]

	need := int(n) * bls.ScalarSize
	if len(b) < need {
		return KeySliver{}, fmt.Errorf("nube: key sliver truncated in shared_values")
	}
	xs := make([]bls.Scalar, n)
	for i := range xs {
		x, err := bls.ScalarFromCanonicalBytes(b[:bls.ScalarSize])
		if err != nil {
			return KeySliver{}, fmt.Errorf("nube: decode key sliver shared value %d: %w", i, err)
		}
		xs[i] = x
		b = b[bls.ScalarSize:]
	}

	if len(b) < 4 {
		return KeySliver{}, fmt.Errorf("nube: key sliver truncated before reencryption_key_parts length")
	}
	m := binary.BigEndian.Uint32(b[:4])
	b = b[4:]

	need = int(m) * bls.G2PointSize
	if len(b) != need {
		return KeySliver{}, fmt.Errorf("nube: key sliver truncated in reencryption_key_parts")
	}
	parts := make([]bls.G2Point, m)
	for i := range parts {
		p, err := bls.G2FromBytes(b[:bls.G2PointSize])
		if err != nil {
			return KeySliver{}, fmt.Errorf("nube: decode key sliver point %d: %w", i, err)
		}
		parts[i] = p
		b = b[bls.G2PointSize:]
	}

	return KeySliver{SharedValues: xs, ReencryptionKeyParts: parts}, nil
}
