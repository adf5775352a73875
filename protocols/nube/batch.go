package nube

import "golang.org/x/sync/errgroup"

// ReencryptAll runs Reencrypt for capsule against every kfrag concurrently,
// useful when a proxy operator holds many KeyFrags for the same Capsule
// (e.g. one per KeyFrag it was delegated across several labels). Results
// are returned in the same order as kfrags. If any call fails, the first
// error is returned and no results are; the other calls still run to
// completion.
func ReencryptAll(capsule Capsule, kfrags []KeyFrag) ([]CapsuleFrag, error) {
	out := make([]CapsuleFrag, len(kfrags))
	eg := errgroup.Group{}
	for i, kfrag := range kfrags {
		i, kfrag := i, kfrag
		eg.Go(func() error {
			cfrag, err := Reencrypt(capsule, kfrag)
			if err != nil {
				return err
			}
			out[i] = cfrag
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
