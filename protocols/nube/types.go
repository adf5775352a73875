// Package nube implements the threshold proxy re-encryption scheme: a
// collective of KeyMakers issues KeyFrags to a Proxy, who re-encrypts a
// Capsule on behalf of a Recipient without ever learning the underlying
// SymmetricKey (spec.md §1-§4).
package nube

import "github.com/nucypher/nube-go/pkg/bls"

// EncryptionKey is either one KeyMaker's share z^s_k of the collective
// encryption key, or the aggregate z^(Σ s_k) produced by summing shares
// with Add. Both are the same type: aggregation is closed.
type EncryptionKey struct {
	point bls.GTElement
}

// Add combines two encryption key shares (or partial aggregates) into one.
func (k EncryptionKey) Add(other EncryptionKey) EncryptionKey {
	return EncryptionKey{point: k.point.Mul(other.point)}
}

// Bytes encodes k as a 576-byte Gt element (spec.md §6).
func (k EncryptionKey) Bytes() []byte {
	return k.point.Bytes()
}

// EncryptionKeyFromBytes decodes a 576-byte Gt element.
func EncryptionKeyFromBytes(b []byte) (EncryptionKey, error) {
	pt, err := bls.GTFromBytes(b)
	if err != nil {
		return EncryptionKey{}, err
	}
	return EncryptionKey{point: pt}, nil
}

// KeySliver is one KeyMaker's contribution toward a set of KeyFrags: the
// shared public x-coordinates derived from a label, and this KeyMaker's
// polynomial evaluated at each of them, raised into G2 against the
// recipient's public key (spec.md §4.2).
type KeySliver struct {
	SharedValues         []bls.Scalar
	ReencryptionKeyParts []bls.G2Point
}

// KeyFrag is one share of the aggregated reencryption key, built by summing
// every KeyMaker's KeySliver at a fixed index (spec.md §4.3).
type KeyFrag struct {
	SharedValue bls.Scalar
	Point       bls.G2Point
}

// Capsule is the per-encryption commitment g^r' published alongside the
// ciphertext it protects (spec.md §4.4).
type Capsule struct {
	point bls.G1Point
}

// Bytes encodes c as a 48-byte compressed G1 point.
func (c Capsule) Bytes() []byte {
	return c.point.Bytes()
}

// CapsuleFromBytes decodes a 48-byte compressed G1 point.
func CapsuleFromBytes(b []byte) (Capsule, error) {
	pt, err := bls.G1FromBytes(b)
	if err != nil {
		return Capsule{}, err
	}
	return Capsule{point: pt}, nil
}

// SymmetricKey is the value an Encryptor derives to seal a message, and
// that a Recipient reconstructs from threshold CapsuleFrags. Two
// SymmetricKeys produced for the same Capsule and aggregated EncryptionKey
// are always equal.
type SymmetricKey struct {
	point bls.GTElement
}

// Equal reports whether two SymmetricKeys encode the same Gt element.
func (s SymmetricKey) Equal(other SymmetricKey) bool {
	return s.point.Equal(other.point)
}

// Bytes encodes s as a 576-byte Gt element.
func (s SymmetricKey) Bytes() []byte {
	return s.point.Bytes()
}

// CapsuleFrag is a Proxy's re-encryption of a Capsule under one KeyFrag: the
// pairing e(capsule, kfrag.Point), tagged with the KeyFrag's shared_value so
// a Recipient can later pick the right Lagrange coefficient (spec.md §4.5).
type CapsuleFrag struct {
	SharedValue bls.Scalar
	Point       bls.GTElement
}
