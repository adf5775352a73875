package nube

import (
	"fmt"
	"io"

	"github.com/nucypher/nube-go/pkg/bls"
)

// Encrypt samples a fresh per-message nonce r' and derives the Capsule g^r'
// to publish alongside the ciphertext, and the SymmetricKey
// aggregated^r' used to seal it (spec.md §4.4). Callers are responsible for
// actually encrypting their plaintext under SymmetricKey.Bytes(); nube
// itself never touches plaintext.
func Encrypt(rand io.Reader, aggregated EncryptionKey) (Capsule, SymmetricKey, error) {
	r, err := bls.RandomScalar(rand)
	if err != nil {
		return Capsule{}, SymmetricKey{}, fmt.Errorf("nube: sample encryption nonce: %w", err)
	}

	params := NewParams()
	capsule := Capsule{point: params.G.ActScalar(r)}
	symmetric := SymmetricKey{point: aggregated.point.Exp(r)}
	return capsule, symmetric, nil
}
