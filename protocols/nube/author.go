package nube

// GenerateKeyFrags aggregates KeySlivers from every KeyMaker in the
// collective into the KeyFrags a Proxy will hold, one per share index
// (spec.md §4.3). All slivers must agree, index for index, on their
// shared_values; otherwise the KeyMakers were not run against the same
// label and share count, and the result would reconstruct to nothing.
func GenerateKeyFrags(slivers []KeySliver) ([]KeyFrag, error) {
	if len(slivers) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(slivers[0].SharedValues)
	for _, s := range slivers[1:] {
		if len(s.SharedValues) != n || len(s.ReencryptionKeyParts) != n {
			return nil, ErrInconsistentShares
		}
		for i, x := range s.SharedValues {
			if !x.Equal(slivers[0].SharedValues[i]) {
				return nil, ErrInconsistentShares
			}
		}
	}

	kfrags := make([]KeyFrag, n)
	for i := 0; i < n; i++ {
		point := slivers[0].ReencryptionKeyParts[i]
		for _, s := range slivers[1:] {
			point = point.Add(s.ReencryptionKeyParts[i])
		}
		kfrags[i] = KeyFrag{SharedValue: slivers[0].SharedValues[i], Point: point}
	}
	return kfrags, nil
}
