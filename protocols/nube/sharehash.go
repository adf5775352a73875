package nube

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/nucypher/nube-go/pkg/bls"
)

// sharedValues deterministically derives the n public x-coordinates that
// every KeyMaker evaluates its polynomial at for a given label, so
// independently-run KeyMakers agree on them without coordination (spec.md
// §4.2, §6).
func sharedValues(label []byte, n int) []bls.Scalar {
	out := make([]bls.Scalar, n)
	for i := range out {
		out[i] = hashToScalar(label, uint32(i))
	}
	return out
}

// hashToScalar derives the scalar at index from label via SHA3-256 over
// attempt_be32 ‖ index_be32 ‖ label, rejection-sampling on attempt until the
// digest falls below the scalar field order (spec.md §6).
func hashToScalar(label []byte, index uint32) bls.Scalar {
	var indexBuf [4]byte
	binary.BigEndian.PutUint32(indexBuf[:], index)

	for attempt := uint32(0); ; attempt++ {
		var attemptBuf [4]byte
		binary.BigEndian.PutUint32(attemptBuf[:], attempt)

		h := sha3.New256()
		h.Write(attemptBuf[:])
		h.Write(indexBuf[:])
		h.Write(label)
		digest := h.Sum(nil)

		if s, err := bls.ScalarFromCanonicalBytes(digest); err == nil {
			return s
		}
	}
}
