package nube_test

import (
	"crypto/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nucypher/nube-go/pkg/bls"
	"github.com/nucypher/nube-go/protocols/nube"
)

func TestNube(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Nube TPRE Suite")
}

// buildCollective runs n independent KeyMakers against a shared label and
// recipient public key, then aggregates their slivers into N KeyFrags.
func buildCollective(n, threshold, shares int, label []byte, pk nube.RecipientPublicKey) ([]*nube.KeyMaker, []nube.KeyFrag) {
	makers := make([]*nube.KeyMaker, n)
	slivers := make([]nube.KeySliver, n)
	for i := 0; i < n; i++ {
		km, err := nube.NewKeyMaker(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		sliver, err := km.MakeKeySliver(rand.Reader, label, pk, threshold, shares)
		Expect(err).NotTo(HaveOccurred())
		makers[i] = km
		slivers[i] = sliver
	}
	kfrags, err := nube.GenerateKeyFrags(slivers)
	Expect(err).NotTo(HaveOccurred())
	return makers, kfrags
}

func aggregatedKey(makers []*nube.KeyMaker) nube.EncryptionKey {
	agg := makers[0].EncryptionKey()
	for _, km := range makers[1:] {
		agg = agg.Add(km.EncryptionKey())
	}
	return agg
}

var _ = Describe("Pairing identity", func() {
	It("matches e(g, h) against the fixed Gt generator", func() {
		params := nube.NewParams()
		z, err := bls.Pair(params.G, params.H)
		Expect(err).NotTo(HaveOccurred())
		Expect(z.Equal(params.Z)).To(BeTrue())
	})
})

var _ = Describe("End-to-end threshold re-encryption", func() {
	var recipientSK *nube.RecipientSecretKey
	var pk nube.RecipientPublicKey

	BeforeEach(func() {
		var err error
		recipientSK, err = nube.NewRecipientSecretKey(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		pk = recipientSK.PublicKey()
	})

	It("decrypts with a threshold subset scattered across the share list (Ñ=4, T=2, N=3)", func() {
		makers, kfrags := buildCollective(4, 2, 3, []byte("some label"), pk)

		capsule, symmetricKey, err := nube.Encrypt(rand.Reader, aggregatedKey(makers))
		Expect(err).NotTo(HaveOccurred())

		cfrag0, err := nube.Reencrypt(capsule, kfrags[0])
		Expect(err).NotTo(HaveOccurred())
		cfrag2, err := nube.Reencrypt(capsule, kfrags[2])
		Expect(err).NotTo(HaveOccurred())

		recovered, err := recipientSK.Decrypt([]nube.CapsuleFrag{cfrag0, cfrag2})
		Expect(err).NotTo(HaveOccurred())
		Expect(recovered.Equal(symmetricKey)).To(BeTrue())
	})

	It("works end to end for the degenerate single-maker, single-share case (Ñ=1, T=1, N=1)", func() {
		makers, kfrags := buildCollective(1, 1, 1, []byte("x"), pk)

		capsule, symmetricKey, err := nube.Encrypt(rand.Reader, aggregatedKey(makers))
		Expect(err).NotTo(HaveOccurred())

		cfrag, err := nube.Reencrypt(capsule, kfrags[0])
		Expect(err).NotTo(HaveOccurred())

		recovered, err := recipientSK.Decrypt([]nube.CapsuleFrag{cfrag})
		Expect(err).NotTo(HaveOccurred())
		Expect(recovered.Equal(symmetricKey)).To(BeTrue())
	})

	It("agrees across two overlapping full-threshold subsets (Ñ=3, T=3, N=5)", func() {
		makers, kfrags := buildCollective(3, 3, 5, []byte("abc"), pk)

		capsule, symmetricKey, err := nube.Encrypt(rand.Reader, aggregatedKey(makers))
		Expect(err).NotTo(HaveOccurred())

		firstSubset := []int{0, 1, 2}
		secondSubset := []int{2, 3, 4}

		collect := func(indices []int) nube.SymmetricKey {
			cfrags := make([]nube.CapsuleFrag, len(indices))
			for i, idx := range indices {
				cfrag, err := nube.Reencrypt(capsule, kfrags[idx])
				Expect(err).NotTo(HaveOccurred())
				cfrags[i] = cfrag
			}
			recovered, err := recipientSK.Decrypt(cfrags)
			Expect(err).NotTo(HaveOccurred())
			return recovered
		}

		a := collect(firstSubset)
		b := collect(secondSubset)
		Expect(a.Equal(symmetricKey)).To(BeTrue())
		Expect(b.Equal(symmetricKey)).To(BeTrue())
	})

	It("rejects a tampered sliver with InconsistentShares (Ñ=2, T=2, N=2)", func() {
		km1, err := nube.NewKeyMaker(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		sliver1, err := km1.MakeKeySliver(rand.Reader, []byte("tamper"), pk, 2, 2)
		Expect(err).NotTo(HaveOccurred())

		km2, err := nube.NewKeyMaker(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		sliver2, err := km2.MakeKeySliver(rand.Reader, []byte("tamper"), pk, 2, 2)
		Expect(err).NotTo(HaveOccurred())

		tamperedSliver2, err := km2.MakeKeySliver(rand.Reader, []byte("different-label"), pk, 2, 2)
		Expect(err).NotTo(HaveOccurred())
		sliver2.SharedValues[0] = tamperedSliver2.SharedValues[0]

		_, err = nube.GenerateKeyFrags([]nube.KeySliver{sliver1, sliver2})
		Expect(err).To(MatchError(nube.ErrInconsistentShares))
	})

	It("produces a wrong result when decrypting with fewer than T fragments (Ñ=2, T=2, N=3)", func() {
		makers, kfrags := buildCollective(2, 2, 3, []byte("below-threshold"), pk)

		capsule, symmetricKey, err := nube.Encrypt(rand.Reader, aggregatedKey(makers))
		Expect(err).NotTo(HaveOccurred())

		cfrag, err := nube.Reencrypt(capsule, kfrags[0])
		Expect(err).NotTo(HaveOccurred())

		wrong, err := recipientSK.Decrypt([]nube.CapsuleFrag{cfrag})
		Expect(err).NotTo(HaveOccurred())
		Expect(wrong.Equal(symmetricKey)).To(BeFalse())
	})

	It("derives identical shared_values but distinct reencryption_key_parts across two independent runs (label=[], N=4)", func() {
		km, err := nube.NewKeyMaker(rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		run1, err := km.MakeKeySliver(rand.Reader, []byte{}, pk, 2, 4)
		Expect(err).NotTo(HaveOccurred())
		run2, err := km.MakeKeySliver(rand.Reader, []byte{}, pk, 2, 4)
		Expect(err).NotTo(HaveOccurred())

		for i := range run1.SharedValues {
			Expect(run1.SharedValues[i].Equal(run2.SharedValues[i])).To(BeTrue())
		}

		anyDifferent := false
		for i := range run1.ReencryptionKeyParts {
			if !run1.ReencryptionKeyParts[i].Equal(run2.ReencryptionKeyParts[i]) {
				anyDifferent = true
				break
			}
		}
		Expect(anyDifferent).To(BeTrue())
	})
})

var _ = Describe("Aggregation commutativity", func() {
	It("is invariant under permutation of input slivers", func() {
		recipientSK, err := nube.NewRecipientSecretKey(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		pk := recipientSK.PublicKey()

		var slivers []nube.KeySliver
		for i := 0; i < 3; i++ {
			km, err := nube.NewKeyMaker(rand.Reader)
			Expect(err).NotTo(HaveOccurred())
			sliver, err := km.MakeKeySliver(rand.Reader, []byte("commutative"), pk, 2, 4)
			Expect(err).NotTo(HaveOccurred())
			slivers = append(slivers, sliver)
		}

		forward, err := nube.GenerateKeyFrags(slivers)
		Expect(err).NotTo(HaveOccurred())

		reversed := []nube.KeySliver{slivers[2], slivers[0], slivers[1]}
		permuted, err := nube.GenerateKeyFrags(reversed)
		Expect(err).NotTo(HaveOccurred())

		for i := range forward {
			Expect(forward[i].Point.Equal(permuted[i].Point)).To(BeTrue())
		}
	})
})

var _ = Describe("Subset independence", func() {
	It("decrypts to the same SymmetricKey from any two distinct size-T subsets", func() {
		recipientSK, err := nube.NewRecipientSecretKey(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		pk := recipientSK.PublicKey()

		makers, kfrags := buildCollective(2, 3, 6, []byte("subset-independence"), pk)
		capsule, symmetricKey, err := nube.Encrypt(rand.Reader, aggregatedKey(makers))
		Expect(err).NotTo(HaveOccurred())

		subsetA := []int{0, 1, 2}
		subsetB := []int{3, 4, 5}

		decryptSubset := func(indices []int) nube.SymmetricKey {
			cfrags := make([]nube.CapsuleFrag, len(indices))
			for i, idx := range indices {
				cfrag, err := nube.Reencrypt(capsule, kfrags[idx])
				Expect(err).NotTo(HaveOccurred())
				cfrags[i] = cfrag
			}
			recovered, err := recipientSK.Decrypt(cfrags)
			Expect(err).NotTo(HaveOccurred())
			return recovered
		}

		a := decryptSubset(subsetA)
		b := decryptSubset(subsetB)
		Expect(a.Equal(symmetricKey)).To(BeTrue())
		Expect(b.Equal(symmetricKey)).To(BeTrue())
	})
})
