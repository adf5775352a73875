package nube

import "github.com/nucypher/nube-go/pkg/bls"

// Params is the fixed (g, h, z) triple shared by every role in a deployment.
type Params = bls.Params

// NewParams builds the fixed pairing-group parameters (spec.md §3).
func NewParams() Params {
	return bls.NewParams()
}
