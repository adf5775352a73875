package nube

import (
	"fmt"
	"io"

	"github.com/nucypher/nube-go/pkg/bls"
	"github.com/nucypher/nube-go/pkg/math/polynomial"
)

// KeyMaker holds one independent secret scalar s_k, one of Ñ that together
// make up the collective encryption key (spec.md §4.1, §4.2).
type KeyMaker struct {
	secret bls.Scalar
}

// NewKeyMaker samples a fresh, nonzero secret scalar.
func NewKeyMaker(rand io.Reader) (*KeyMaker, error) {
	s, err := bls.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("nube: sample key maker secret: %w", err)
	}
	return &KeyMaker{secret: s}, nil
}

// EncryptionKey returns this KeyMaker's share z^s_k of the collective
// encryption key.
func (k *KeyMaker) EncryptionKey() EncryptionKey {
	return EncryptionKey{point: NewParams().Z.Exp(k.secret)}
}

// MakeKeySliver builds this KeyMaker's contribution toward `shares` KeyFrags
// for recipientPK under label, such that any `threshold` of them suffice to
// reconstruct s_k's evaluation (spec.md §4.2).
func (k *KeyMaker) MakeKeySliver(rand io.Reader, label []byte, recipientPK RecipientPublicKey, threshold, shares int) (KeySliver, error) {
	if threshold < 1 {
		return KeySliver{}, fmt.Errorf("nube: threshold must be at least 1, got %d", threshold)
	}
	if shares < threshold {
		return KeySliver{}, fmt.Errorf("nube: shares (%d) must be at least threshold (%d)", shares, threshold)
	}

	randomCoeffs := make([]bls.Scalar, threshold-1)
	for i := range randomCoeffs {
		c, err := bls.RandomScalar(rand)
		if err != nil {
			return KeySliver{}, fmt.Errorf("nube: sample polynomial coefficient: %w", err)
		}
		randomCoeffs[i] = c
	}
	poly := polynomial.New(k.secret, randomCoeffs)

	xs := sharedValues(label, shares)
	parts := make([]bls.G2Point, shares)
	for i, x := range xs {
		parts[i] = recipientPK.point.ActScalar(poly.Evaluate(x))
	}

	return KeySliver{SharedValues: xs, ReencryptionKeyParts: parts}, nil
}
