package polynomial

import (
	"errors"

	"github.com/nucypher/nube-go/pkg/bls"
)

// ErrDuplicatePoint is returned by Lagrange when two x-coordinates coincide,
// making (x_j - x_i) non-invertible.
var ErrDuplicatePoint = errors.New("polynomial: duplicate x-coordinate")

// Lagrange computes, for each x_i in xs, the Lagrange coefficient
//
//	λ_i = Π_{j≠i} x_j * (x_j - x_i)^-1
//
// used to interpolate P(0) from the points (x_i, P(x_i)). The result is
// aligned with xs: coefficient i corresponds to xs[i]. Duplicate
// coordinates are rejected with ErrDuplicatePoint (spec.md §4.6's
// DegenerateShares).
func Lagrange(xs []bls.Scalar) ([]bls.Scalar, error) {
	one := bls.ScalarFromUint64(1)
	coeffs := make([]bls.Scalar, len(xs))
	for i := range xs {
		lambda := one
		for j := range xs {
			if j == i {
				continue
			}
			diff := xs[j].Sub(xs[i])
			if diff.IsZero() {
				return nil, ErrDuplicatePoint
			}
			lambda = lambda.Mul(xs[j]).Mul(diff.Inverse())
		}
		coeffs[i] = lambda
	}
	return coeffs, nil
}
