package nube_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nucypher/nube-go/protocols/nube"
)

func makeSlivers(t *testing.T, numMakers, threshold, shares int, label []byte, pk nube.RecipientPublicKey) ([]*nube.KeyMaker, []nube.KeySliver) {
	t.Helper()
	makers := make([]*nube.KeyMaker, numMakers)
	slivers := make([]nube.KeySliver, numMakers)
	for i := 0; i < numMakers; i++ {
		km, err := nube.NewKeyMaker(rand.Reader)
		require.NoError(t, err)
		sliver, err := km.MakeKeySliver(rand.Reader, label, pk, threshold, shares)
		require.NoError(t, err)
		makers[i] = km
		slivers[i] = sliver
	}
	return makers, slivers
}

func TestGenerateKeyFragsRejectsEmptyInput(t *testing.T) {
	_, err := nube.GenerateKeyFrags(nil)
	assert.ErrorIs(t, err, nube.ErrEmptyInput)
}

func TestGenerateKeyFragsRejectsInconsistentShares(t *testing.T) {
	recipientSK, err := nube.NewRecipientSecretKey(rand.Reader)
	require.NoError(t, err)
	pk := recipientSK.PublicKey()

	km1, err := nube.NewKeyMaker(rand.Reader)
	require.NoError(t, err)
	s1, err := km1.MakeKeySliver(rand.Reader, []byte("label-a"), pk, 2, 4)
	require.NoError(t, err)

	km2, err := nube.NewKeyMaker(rand.Reader)
	require.NoError(t, err)
	s2, err := km2.MakeKeySliver(rand.Reader, []byte("label-b"), pk, 2, 4)
	require.NoError(t, err)

	_, err = nube.GenerateKeyFrags([]nube.KeySliver{s1, s2})
	assert.ErrorIs(t, err, nube.ErrInconsistentShares)
}

func TestGenerateKeyFragsProducesNFrags(t *testing.T) {
	recipientSK, err := nube.NewRecipientSecretKey(rand.Reader)
	require.NoError(t, err)
	pk := recipientSK.PublicKey()

	_, slivers := makeSlivers(t, 3, 2, 5, []byte("label"), pk)

	kfrags, err := nube.GenerateKeyFrags(slivers)
	require.NoError(t, err)
	assert.Len(t, kfrags, 5)
}
