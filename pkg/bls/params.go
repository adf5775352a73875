package bls

// Params holds the fixed pairing-group generators shared across a
// deployment: g ∈ G1, h ∈ G2, and z = e(g, h) ∈ Gt (spec.md §3, §4.1).
type Params struct {
	G G1Point
	H G2Point
	Z GTElement
}

// NewParams builds the fixed (g, h, z) triple. It takes no inputs and has
// no failure mode: z is always computed by pairing the same two canonical
// generators returned for G and H, so it can never drift from them.
func NewParams() Params {
	g := G1Generator()
	h := G2Generator()
	z, err := Pair(g, h)
	if err != nil {
		// Pairing the fixed canonical generators cannot fail; a non-nil
		// error here would mean the underlying curve library is broken.
		panic("bls: pairing canonical generators failed: " + err.Error())
	}
	return Params{G: g, H: h, Z: z}
}
