package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Pubkey:   pub,
		Sequence: 17,
	}

	owners := []*multisig.Owner{
		{Address: pub.Address(), Name: "alice"},
		{Address: crypto.GenPrivKeyEd25519().PublicKey().Address(), Name: "bob"},
		{Address: crypto.GenPrivKeyEd25519().PublicKey().Address(), Name: "carol"},
	}
	createMsg := &multisig.CreateMultisigMsg{
		Metadata:      &quorum.Metadata{Schema: 1},
		Owners:        owners,
		Threshold:     2,
		Label:         "treasury",
		CoolOffPeriod: 3600,
	}

	multisigID := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	authority := multisig.AuthorityCondition(multisigID).Address()
	dst := crypto.GenPrivKeyEd25519().PublicKey().Address()
	amt := coin.NewCoin(250, 0, "IOV")
	send := &cash.SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Amount:      &amt,
		Source:      authority,
		Destination: dst,
		Memo:        "Test payment",
	}
	payload, err := send.Marshal()
	if err != nil {
		panic(err)
	}
	accounts := []*multisig.AccountMeta{
		{Address: authority, IsSigner: true, IsWritable: true},
		{Address: dst, IsWritable: true},
	}
	proposalMsg := &multisig.CreateProposalMsg{
		Metadata:   &quorum.Metadata{Schema: 1},
		MultisigID: multisigID,
		Instructions: []*multisig.SubOperation{
			{Target: send.Path(), Accounts: accounts, Payload: payload},
		},
		Title:     "Pay the auditor",
		ExpiresAt: 1577836800,
	}
	approveMsg := &multisig.ApproveProposalMsg{
		Metadata:   &quorum.Metadata{Schema: 1},
		ProposalID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
	}
	executeMsg := &multisig.ExecuteProposalMsg{
		Metadata:   &quorum.Metadata{Schema: 1},
		ProposalID: []byte{0, 0, 0, 0, 0, 0, 0, 1},
		Accounts:   accounts,
	}

	unsigned, err := NewTx(proposalMsg)
	if err != nil {
		panic(err)
	}
	tx := *unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "send_msg", Obj: send},
		{Filename: "create_multisig_msg", Obj: createMsg},
		{Filename: "create_proposal_msg", Obj: proposalMsg},
		{Filename: "approve_msg", Obj: approveMsg},
		{Filename: "execute_msg", Obj: executeMsg},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
