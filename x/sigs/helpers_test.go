package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

const testChainID = "quorum-test"

// signedTx carries a raw payload and its signatures.
type signedTx struct {
	quorumtest.Tx
	payload    []byte
	signatures []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func newSignedTx(payload string) *signedTx {
	return &signedTx{
		Tx:      quorumtest.Tx{Msg: &quorumtest.Msg{RoutePath: "test/payload", Serialized: []byte(payload)}},
		payload: []byte(payload),
	}
}

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.signatures
}

// sign appends a signature of key made with given nonce.
func (tx *signedTx) sign(t testing.TB, key *crypto.PrivateKey, chainID string, seq int64) *signedTx {
	t.Helper()
	sig, err := SignTx(key, tx, chainID, seq)
	assert.Nil(t, err)
	tx.signatures = append(tx.signatures, sig)
	return tx
}

func chainCtx() quorum.Context {
	return quorum.WithChainID(context.Background(), testChainID)
}

// signersHandler remembers the signers it was called with.
type signersHandler struct {
	seen []quorum.Condition
}

func (h *signersHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return &quorum.CheckResult{GasPayment: 7}, nil
}

func (h *signersHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return &quorum.DeliverResult{}, nil
}

func nonceOf(t testing.TB, db quorum.ReadOnlyKVStore, key *crypto.PrivateKey) int64 {
	t.Helper()
	u, err := NewBucket().Load(db, key.PublicKey().Address())
	assert.Nil(t, err)
	if u == nil {
		return 0
	}
	return u.Sequence
}
