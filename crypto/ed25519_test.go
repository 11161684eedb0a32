package crypto

import (
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestVerify(t *testing.T) {
	owner := GenPrivKeyEd25519()
	stranger := GenPrivKeyEd25519()
	approve := []byte("approve proposal 3")

	valid, err := owner.Sign(approve)
	assert.Nil(t, err)
	forged, err := stranger.Sign(approve)
	assert.Nil(t, err)

	cases := map[string]struct {
		key     *PublicKey
		message []byte
		sig     *Signature
		want    bool
	}{
		"signed by the key": {
			key:     owner.PublicKey(),
			message: approve,
			sig:     valid,
			want:    true,
		},
		"other message": {
			key:     owner.PublicKey(),
			message: []byte("reject proposal 3"),
			sig:     valid,
		},
		"other signer": {
			key:     owner.PublicKey(),
			message: approve,
			sig:     forged,
		},
		"truncated signature": {
			key:     owner.PublicKey(),
			message: approve,
			sig:     &Signature{Ed25519: valid.Ed25519[:32]},
		},
		"empty signature": {
			key:     owner.PublicKey(),
			message: approve,
			sig:     &Signature{},
		},
		"nil signature": {
			key:     owner.PublicKey(),
			message: approve,
		},
		"empty key": {
			key:     &PublicKey{},
			message: approve,
			sig:     valid,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.key.Verify(tc.message, tc.sig))
		})
	}
}

func TestKeyCondition(t *testing.T) {
	a := GenPrivKeyEd25519().PublicKey()
	b := GenPrivKeyEd25519().PublicKey()

	assert.Nil(t, a.Condition().Validate())
	ext, typ, data, err := a.Condition().Parse()
	assert.Nil(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte(a.Ed25519), data)
	if a.Address().Equals(b.Address()) {
		t.Fatal("different keys share an address")
	}

	var empty PublicKey
	assert.Nil(t, empty.Condition())
	assert.Nil(t, empty.Address())

	raw, err := a.Marshal()
	assert.Nil(t, err)
	var back PublicKey
	assert.Nil(t, back.Unmarshal(raw))
	assert.Equal(t, a.Address(), back.Address())
}
