package nube

import (
	"fmt"
	"io"

	"github.com/nucypher/nube-go/pkg/bls"
	"github.com/nucypher/nube-go/pkg/math/polynomial"
)

// RecipientSecretKey is the long-term secret key r held by a Recipient.
type RecipientSecretKey struct {
	secret bls.Scalar
}

// RecipientPublicKey is h^r, freely shareable with KeyMakers so they can
// bind KeySlivers to this recipient.
type RecipientPublicKey struct {
	point bls.G2Point
}

// NewRecipientSecretKey samples a fresh, nonzero recipient secret key.
func NewRecipientSecretKey(rand io.Reader) (*RecipientSecretKey, error) {
	s, err := bls.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("nube: sample recipient secret key: %w", err)
	}
	return &RecipientSecretKey{secret: s}, nil
}

// PublicKey derives h^r.
func (sk *RecipientSecretKey) PublicKey() RecipientPublicKey {
	return RecipientPublicKey{point: NewParams().H.ActScalar(sk.secret)}
}

// Decrypt combines threshold-or-more CapsuleFrags via Lagrange
// interpolation at zero, then removes the recipient's own secret factor, to
// recover the SymmetricKey an Encryptor derived (spec.md §4.6).
func (sk *RecipientSecretKey) Decrypt(cfrags []CapsuleFrag) (SymmetricKey, error) {
	if len(cfrags) == 0 {
		return SymmetricKey{}, ErrEmptyInput
	}
	if sk.secret.IsZero() {
		return SymmetricKey{}, ErrInvalidKey
	}

	xs := make([]bls.Scalar, len(cfrags))
	for i, c := range cfrags {
		xs[i] = c.SharedValue
	}
	lambdas, err := polynomial.Lagrange(xs)
	if err != nil {
		return SymmetricKey{}, fmt.Errorf("nube: decrypt: %w: %v", ErrDegenerateShares, err)
	}

	combined := cfrags[0].Point.Exp(lambdas[0])
	for i := 1; i < len(cfrags); i++ {
		combined = combined.Mul(cfrags[i].Point.Exp(lambdas[i]))
	}

	rInv := sk.secret.Inverse()
	return SymmetricKey{point: combined.Exp(rInv)}, nil
}
