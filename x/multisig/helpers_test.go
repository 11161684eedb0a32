package multisig

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/settings"
)

// testDecoder allows to replay coin transfers and multisig updates.
var testDecoder = DecoderFunc(func(target string, payload []byte) (quorum.Msg, error) {
	var msg quorum.Msg
	switch target {
	case "cash/send":
		msg = &cash.SendMsg{}
	case pathUpdateMultisigMsg:
		msg = &UpdateMultisigMsg{}
	default:
		return nil, errors.Wrapf(ErrUnknownTarget, "%q", target)
	}
	if err := msg.Unmarshal(payload); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return msg, nil
})

var (
	multisigFee = coin.NewCoin(5, 0, "IOV")
	proposalFee = coin.NewCoin(1, 0, "IOV")
)

// env is a complete setup with the coin ledger, the authority registry and
// all multisig handlers registered in a single router.
type env struct {
	db      quorum.CacheableKVStore
	signers *quorumtest.CtxAuth
	router  *app.Router
	cash    cash.BaseController
	ops     quorum.Address
}

func newEnv(t testing.TB) *env {
	t.Helper()

	e := &env{
		db:      store.MemStore(),
		signers: &quorumtest.CtxAuth{Key: "sigs"},
		router:  app.NewRouter(),
		cash:    cash.NewController(cash.NewBucket()),
		ops:     quorumtest.NewCondition().Address(),
	}
	auth := x.ChainAuth(e.signers, Authenticate{})
	cash.RegisterRoutes(e.router, auth, e.cash)
	RegisterRoutes(e.router, auth, e.signers, e.cash, testDecoder, e.router)

	conf := &Configuration{
		Metadata:        &quorum.Metadata{Schema: 1},
		Owner:           quorumtest.NewCondition().Address(),
		MaxOwners:       5,
		MaxInstructions: 3,
	}
	assert.Nil(t, gconf.Save(e.db, packageName, conf))
	return e
}

// withRegistry initializes the authority registry.
func (e *env) withRegistry(t testing.TB) *env {
	t.Helper()
	s := &settings.Settings{
		Metadata:            &quorum.Metadata{Schema: 1},
		Initialized:         true,
		OpsFeeAccount:       e.ops,
		Admin:               quorumtest.NewCondition().Address(),
		MultisigCreationFee: &multisigFee,
		ProposalCreationFee: &proposalFee,
	}
	assert.Nil(t, settings.NewBucket().Save(e.db, s))
	return e
}

func (e *env) fund(t testing.TB, addr quorum.Address, whole int64) {
	t.Helper()
	assert.Nil(t, e.cash.IssueCoins(e.db, addr, coin.NewCoin(whole, 0, "IOV")))
}

// balance returns the amount of IOV held by given address.
func (e *env) balance(t testing.TB, addr quorum.Address) int64 {
	t.Helper()
	coins, err := e.cash.Balance(e.db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	var total int64
	for _, c := range coins {
		if c.Ticker == "IOV" {
			total += c.Whole
		}
	}
	return total
}

func (e *env) ctx(now int64, signers ...quorum.Condition) quorum.Context {
	ctx := e.signers.SetConditions(context.Background(), signers...)
	return quorum.WithBlockTime(ctx, time.Unix(now, 0))
}

// deliver processes the message in a new context with given signers and
// block time.
func (e *env) deliver(t testing.TB, now int64, msg quorum.Msg, signers ...quorum.Condition) (*quorum.DeliverResult, error) {
	t.Helper()
	return e.router.Deliver(e.ctx(now, signers...), e.db, &quorumtest.Tx{Msg: msg})
}

// check processes the message on a cache that is discarded afterwards.
func (e *env) check(t testing.TB, now int64, msg quorum.Msg, signers ...quorum.Condition) error {
	t.Helper()
	cache := e.db.CacheWrap()
	defer cache.Discard()
	_, err := e.router.Check(e.ctx(now, signers...), cache, &quorumtest.Tx{Msg: msg})
	return err
}

func (e *env) createMultisig(t testing.TB, now int64, threshold uint32, coolOff int64, creator quorum.Condition, members ...quorum.Condition) []byte {
	t.Helper()
	res, err := e.deliver(t, now, &CreateMultisigMsg{
		Metadata:      &quorum.Metadata{Schema: 1},
		Owners:        owners(members...),
		Threshold:     threshold,
		Label:         "treasury",
		CoolOffPeriod: coolOff,
	}, creator)
	if err != nil {
		t.Fatalf("cannot create multisig: %+v", err)
	}
	return res.Data
}

func (e *env) createProposal(t testing.TB, now int64, multisigID []byte, expires int64, proposer quorum.Condition, ops ...*SubOperation) []byte {
	t.Helper()
	res, err := e.deliver(t, now, &CreateProposalMsg{
		Metadata:     &quorum.Metadata{Schema: 1},
		MultisigID:   multisigID,
		Instructions: ops,
		Title:        "test proposal",
		ExpiresAt:    quorum.UnixTime(expires),
	}, proposer)
	if err != nil {
		t.Fatalf("cannot create proposal: %+v", err)
	}
	return res.Data
}

func (e *env) vote(t testing.TB, now int64, proposalID []byte, approve bool, voter quorum.Condition) error {
	t.Helper()
	var msg quorum.Msg = &RejectProposalMsg{Metadata: &quorum.Metadata{Schema: 1}, ProposalID: proposalID}
	if approve {
		msg = &ApproveProposalMsg{Metadata: &quorum.Metadata{Schema: 1}, ProposalID: proposalID}
	}
	_, err := e.deliver(t, now, msg, voter)
	return err
}

func (e *env) execute(t testing.TB, now int64, proposalID []byte, accounts []*AccountMeta, signers ...quorum.Condition) error {
	t.Helper()
	_, err := e.deliver(t, now, &ExecuteProposalMsg{
		Metadata:   &quorum.Metadata{Schema: 1},
		ProposalID: proposalID,
		Accounts:   accounts,
	}, signers...)
	return err
}

func (e *env) proposal(t testing.TB, id []byte) *Proposal {
	t.Helper()
	p, err := NewProposalBucket().GetProposal(e.db, id)
	assert.Nil(t, err)
	return p
}

func (e *env) multisig(t testing.TB, id []byte) *Multisig {
	t.Helper()
	m, err := NewMultisigBucket().GetMultisig(e.db, id)
	assert.Nil(t, err)
	return m
}

// sendOp returns a sub operation transferring coins. The source is marked
// as a signer.
func sendOp(t testing.TB, src, dst quorum.Address, whole int64) *SubOperation {
	t.Helper()
	amount := coin.NewCoin(whole, 0, "IOV")
	payload, err := (&cash.SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Source:      src,
		Destination: dst,
		Amount:      &amount,
	}).Marshal()
	assert.Nil(t, err)
	return &SubOperation{
		Target: "cash/send",
		Accounts: []*AccountMeta{
			{Address: src, IsSigner: true, IsWritable: true},
			{Address: dst, IsWritable: true},
		},
		Payload: payload,
	}
}

// accountsOf returns all accounts referenced by given operations, as they
// must be supplied on execution.
func accountsOf(ops ...*SubOperation) []*AccountMeta {
	var res []*AccountMeta
	for _, op := range ops {
		res = append(res, op.Accounts...)
	}
	return res
}
