package nube

import "errors"

// Error kinds from spec.md §7. Callers distinguish them with errors.Is;
// wrapping at call boundaries follows the teacher's fmt.Errorf("...: %w")
// convention (see protocols/lss/config/config.go in the teacher).
var (
	// ErrInconsistentShares is returned by GenerateKeyFrags when the
	// supplied KeySlivers disagree on their shared_values sequence.
	ErrInconsistentShares = errors.New("nube: key slivers disagree on shared values")

	// ErrDegenerateShares is returned by Decrypt when two CapsuleFrags
	// carry the same shared_value, making their difference non-invertible.
	ErrDegenerateShares = errors.New("nube: capsule fragments share a duplicate value")

	// ErrInvalidKey is returned by Decrypt when the recipient secret key
	// is zero. This should never occur for a key produced by
	// NewRecipientSecretKey.
	ErrInvalidKey = errors.New("nube: recipient secret key is zero")

	// ErrEmptyInput is returned by GenerateKeyFrags and Decrypt when given
	// a zero-length input sequence.
	ErrEmptyInput = errors.New("nube: input sequence is empty")
)
