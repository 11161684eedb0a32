package app

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/quorum"
	quorumApp "github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/commands/server"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/settings"
	"github.com/iov-one/quorum/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "test-chain-quorum"

// genesisTime is the block time of height zero. Every block is one second
// later than the previous one.
var genesisTime = time.Date(2019, 5, 1, 10, 0, 0, 0, time.UTC)

// Signer keeps the private key and the nonce of a test account.
type Signer struct {
	pk    *crypto.PrivateKey
	nonce int64
}

func newSigner() *Signer {
	return &Signer{pk: crypto.GenPrivKeyEd25519()}
}

func (s *Signer) Address() quorum.Address {
	return s.pk.PublicKey().Address()
}

// chain drives an application one transaction per block.
type chain struct {
	app    abci.Application
	height int64
}

func newChain(t *testing.T, deployer *Signer) *chain {
	t.Helper()
	application, err := GenerateApp(&server.Options{Logger: log.NewNopLogger()})
	assert.Nil(t, err)

	genesis, err := GenInitOptions([]string{"IOV", deployer.Address().String()})
	assert.Nil(t, err)
	application.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: genesis,
	})
	// genesis state is visible to queries and CheckTx only once committed
	application.Commit()
	return &chain{app: application}
}

// now returns the unix time of the next block.
func (c *chain) now() int64 {
	return genesisTime.Unix() + c.height + 1
}

// submit signs the message with all signers and runs it through check and
// deliver in a new block.
func (c *chain) submit(t *testing.T, msg quorum.Msg, signers ...*Signer) abci.ResponseDeliverTx {
	t.Helper()
	tx, err := NewTx(msg)
	assert.Nil(t, err)
	for _, s := range signers {
		sig, err := sigs.SignTx(s.pk, tx, chainID, s.nonce)
		assert.Nil(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}
	txBytes, err := tx.Marshal()
	assert.Nil(t, err)

	c.height++
	header := abci.Header{
		ChainID: chainID,
		Height:  c.height,
		Time:    genesisTime.Add(time.Duration(c.height) * time.Second),
	}
	c.app.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := c.app.CheckTx(txBytes)
	dres := c.app.DeliverTx(txBytes)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	cres := c.app.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)

	if chres.Code != 0 && dres.Code == 0 {
		t.Fatalf("check failed but deliver passed: %s", chres.Log)
	}
	c.syncNonces(t, signers)
	return dres
}

// syncNonces reloads the next nonce of every signer. Signatures are checked
// outside the deliver savepoint, so a nonce is used up as soon as they
// verify, even when the message itself fails.
func (c *chain) syncNonces(t *testing.T, signers []*Signer) {
	t.Helper()
	for _, s := range signers {
		res := c.app.Query(abci.RequestQuery{Path: "/auth", Data: s.Address()})
		assert.Equal(t, uint32(0), res.Code)
		var user sigs.UserData
		assert.Nil(t, firstResult(res.Value, &user))
		s.nonce = user.Sequence
	}
}

func (c *chain) mustSubmit(t *testing.T, msg quorum.Msg, signers ...*Signer) abci.ResponseDeliverTx {
	t.Helper()
	res := c.submit(t, msg, signers...)
	if res.Code != 0 {
		t.Fatalf("%s failed with code %d: %s", msg.Path(), res.Code, res.Log)
	}
	return res
}

func (c *chain) query(t *testing.T, path string, key []byte, dest quorum.Persistent) {
	t.Helper()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: key})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)
	assert.Nil(t, firstResult(res.Value, dest))
}

// firstResult decodes the first model of a query response into dest and
// leaves dest untouched when nothing matched.
func firstResult(raw []byte, dest quorum.Persistent) error {
	var set quorumApp.ResultSet
	if err := set.Unmarshal(raw); err != nil {
		return err
	}
	if len(set.Results) == 0 {
		return nil
	}
	return dest.Unmarshal(set.Results[0])
}

func (c *chain) balance(t *testing.T, addr quorum.Address) int64 {
	t.Helper()
	res := c.app.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	assert.Equal(t, uint32(0), res.Code)
	var set cash.Set
	assert.Nil(t, firstResult(res.Value, &set))
	var total int64
	for _, amount := range set.Coins {
		total += amount.Whole
	}
	return total
}

func coinPtr(whole int64) *coin.Coin {
	c := coin.NewCoin(whole, 0, "IOV")
	return &c
}

func TestApp(t *testing.T) {
	alice, bob, carol := newSigner(), newSigner(), newSigner()
	ops := newSigner().Address()
	auditor := newSigner().Address()

	c := newChain(t, alice)
	assert.Equal(t, int64(123456789), c.balance(t, alice.Address()))

	c.mustSubmit(t, &settings.InitSettingsMsg{
		Metadata:            &quorum.Metadata{Schema: 1},
		OpsFeeAccount:       ops,
		MultisigCreationFee: coinPtr(5),
		ProposalCreationFee: coinPtr(1),
	}, alice)

	// the registry is a singleton
	res := c.submit(t, &settings.InitSettingsMsg{
		Metadata:      &quorum.Metadata{Schema: 1},
		OpsFeeAccount: ops,
	}, alice)
	assert.Equal(t, true, res.Code != 0)
	// the failed message still used up a nonce
	assert.Equal(t, int64(2), alice.nonce)

	dres := c.mustSubmit(t, &multisig.CreateMultisigMsg{
		Metadata: &quorum.Metadata{Schema: 1},
		Owners: []*multisig.Owner{
			{Address: alice.Address(), Name: "alice"},
			{Address: bob.Address(), Name: "bob"},
			{Address: carol.Address(), Name: "carol"},
		},
		Threshold:     2,
		Label:         "treasury",
		CoolOffPeriod: 2,
	}, alice)
	multisigID := dres.Data

	var ms multisig.Multisig
	c.query(t, "/multisigs", multisigID, &ms)
	assert.Equal(t, uint32(2), ms.Threshold)
	assert.Equal(t, uint64(1), ms.OwnerSetSeqno)
	assert.Equal(t, multisig.AuthorityCondition(multisigID).Address(), ms.Authority)
	assert.Equal(t, int64(5), c.balance(t, ops))

	// fund the authority, it has no private key
	c.mustSubmit(t, &cash.SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Source:      alice.Address(),
		Destination: ms.Authority,
		Amount:      coinPtr(1000),
	}, alice)

	send := &cash.SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Source:      ms.Authority,
		Destination: auditor,
		Amount:      coinPtr(300),
		Memo:        "audit 2019",
	}
	payload, err := send.Marshal()
	assert.Nil(t, err)
	accounts := []*multisig.AccountMeta{
		{Address: ms.Authority, IsSigner: true, IsWritable: true},
		{Address: auditor, IsWritable: true},
	}

	// expiry must be after the cool off period
	res = c.submit(t, &multisig.CreateProposalMsg{
		Metadata:     &quorum.Metadata{Schema: 1},
		MultisigID:   multisigID,
		Instructions: []*multisig.SubOperation{{Target: send.Path(), Accounts: accounts, Payload: payload}},
		Title:        "Pay the auditor",
		ExpiresAt:    quorum.UnixTime(c.now() + 2),
	}, alice)
	assert.Equal(t, multisig.ErrExpiryBeforeCoolOff.ABCICode(), res.Code)

	dres = c.mustSubmit(t, &multisig.CreateProposalMsg{
		Metadata:     &quorum.Metadata{Schema: 1},
		MultisigID:   multisigID,
		Instructions: []*multisig.SubOperation{{Target: send.Path(), Accounts: accounts, Payload: payload}},
		Title:        "Pay the auditor",
		ExpiresAt:    quorum.UnixTime(c.now() + 3600),
	}, alice)
	proposalID := dres.Data
	assert.Equal(t, int64(6), c.balance(t, ops))

	c.mustSubmit(t, &multisig.ApproveProposalMsg{Metadata: &quorum.Metadata{Schema: 1}, ProposalID: proposalID}, alice)

	// only one approval, execution is refused
	execute := &multisig.ExecuteProposalMsg{
		Metadata:   &quorum.Metadata{Schema: 1},
		ProposalID: proposalID,
		Accounts:   accounts,
	}
	res = c.submit(t, execute, carol)
	assert.Equal(t, multisig.ErrNotEnoughApprovals.ABCICode(), res.Code)

	c.mustSubmit(t, &multisig.ApproveProposalMsg{Metadata: &quorum.Metadata{Schema: 1}, ProposalID: proposalID}, bob)
	passedAt := c.now() - 1

	var p multisig.Proposal
	c.query(t, "/proposals", proposalID, &p)
	assert.Equal(t, multisig.ProposalStatus_Passed, p.Status)
	assert.Equal(t, quorum.UnixTime(passedAt), p.PassedAt)

	var v multisig.Vote
	c.query(t, "/votes", append(append([]byte{}, proposalID...), bob.Address()...), &v)
	assert.Equal(t, multisig.VoteChoice_Approve, v.Choice)

	// cool off period of two seconds, the next block is only one second later
	res = c.submit(t, execute, carol)
	assert.Equal(t, multisig.ErrCoolOffNotElapsed.ABCICode(), res.Code)

	c.mustSubmit(t, execute, carol)
	assert.Equal(t, int64(300), c.balance(t, auditor))
	assert.Equal(t, int64(700), c.balance(t, ms.Authority))

	c.query(t, "/proposals", proposalID, &p)
	assert.Equal(t, multisig.ProposalStatus_Executed, p.Status)

	// carol never held coins, the authority signature is not hers
	res = c.submit(t, &cash.SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Source:      ms.Authority,
		Destination: carol.Address(),
		Amount:      coinPtr(1),
	}, carol)
	assert.Equal(t, true, res.Code != 0)
	assert.Equal(t, int64(700), c.balance(t, ms.Authority))
}

func TestGenInitOptions(t *testing.T) {
	_, err := GenInitOptions([]string{"iov"})
	if err == nil {
		t.Fatal("lower case ticker must be rejected")
	}

	addr := newSigner().Address()
	raw, err := GenInitOptions([]string{"ABC", addr.String()})
	assert.Nil(t, err)
	for _, want := range []string{"123456789 ABC", addr.String(), `"max_owners": 20`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("genesis is missing %q:\n%s", want, raw)
		}
	}
	ini := Initializers()
	var opts quorum.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))
	assert.Nil(t, ini.FromGenesis(opts, store.MemStore()))
}

func TestExamples(t *testing.T) {
	for _, ex := range Examples() {
		t.Run(ex.Filename, func(t *testing.T) {
			bz, err := ex.Obj.Marshal()
			assert.Nil(t, err)
			if len(bz) == 0 {
				t.Fatalf("%s serialized to nothing", ex.Filename)
			}
		})
	}
}

func TestTxDecoder(t *testing.T) {
	signer := newSigner()
	msg := &multisig.ApproveProposalMsg{Metadata: &quorum.Metadata{Schema: 1}, ProposalID: []byte{0, 0, 0, 0, 0, 0, 0, 3}}
	tx, err := NewTx(msg)
	assert.Nil(t, err)
	sig, err := sigs.SignTx(signer.pk, tx, chainID, 4)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	raw, err := tx.Marshal()
	assert.Nil(t, err)
	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)
	assert.Equal(t, tx, decoded)

	got, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, msg, got)
}
