package nube

import (
	"fmt"

	"github.com/nucypher/nube-go/pkg/bls"
)

// Reencrypt pairs a Capsule with one KeyFrag to produce a CapsuleFrag
// (spec.md §4.5). A Proxy holds no state of its own beyond the KeyFrags it
// was handed; Reencrypt is a pure function of its two inputs.
func Reencrypt(capsule Capsule, kfrag KeyFrag) (CapsuleFrag, error) {
	point, err := bls.Pair(capsule.point, kfrag.Point)
	if err != nil {
		return CapsuleFrag{}, fmt.Errorf("nube: reencrypt: %w", err)
	}
	return CapsuleFrag{SharedValue: kfrag.SharedValue, Point: point}, nil
}
