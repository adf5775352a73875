// Package polynomial implements secret-sharing polynomials and Lagrange
// interpolation at zero over the BLS12-381 scalar field.
package polynomial

import "github.com/nucypher/nube-go/pkg/bls"

// Polynomial is P(x) = coeffs[0] + coeffs[1]*x + ... + coeffs[len-1]*x^(len-1).
//
// Per spec.md §9, coeffs[0] is always the secret being shared (a KeyMaker's
// s_k, or an adjudicator/dealer secret in a generalized use) — it is stored
// inline rather than duplicated into a separate "coefficients" list, so
// there is exactly one place a caller can find or accidentally leak it.
type Polynomial struct {
	coeffs []bls.Scalar
}

// New builds the polynomial with the given constant term (the secret) and
// threshold-1 additional random coefficients, ascending by degree.
func New(secret bls.Scalar, randomCoeffs []bls.Scalar) *Polynomial {
	coeffs := make([]bls.Scalar, 0, len(randomCoeffs)+1)
	coeffs = append(coeffs, secret)
	coeffs = append(coeffs, randomCoeffs...)
	return &Polynomial{coeffs: coeffs}
}

// Threshold returns the minimum number of evaluations needed to reconstruct
// the polynomial's constant term, i.e. its degree plus one.
func (p *Polynomial) Threshold() int {
	return len(p.coeffs)
}

// Evaluate computes P(x) via Horner's method, high degree to low — the same
// evaluation order as the original keymaker.rs poly_eval.
func (p *Polynomial) Evaluate(x bls.Scalar) bls.Scalar {
	result := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}
