package multisig

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
)

func TestValidateMessages(t *testing.T) {
	a := quorumtest.NewCondition()
	b := quorumtest.NewCondition()
	c := quorumtest.NewCondition()
	meta := &quorum.Metadata{Schema: 1}
	op := &SubOperation{
		Target:   "cash/send",
		Accounts: []*AccountMeta{{Address: a.Address(), IsSigner: true, IsWritable: true}},
		Payload:  []byte("payload is not inspected"),
	}

	cases := map[string]struct {
		Msg     quorum.Msg
		WantErr *errors.Error
	}{
		"valid create multisig": {
			Msg: &CreateMultisigMsg{Metadata: meta, Owners: owners(a, b, c), Threshold: 2, Label: "ops"},
		},
		"create multisig with threshold equal to owners": {
			Msg: &CreateMultisigMsg{Metadata: meta, Owners: owners(a, b, c), Threshold: 3},
		},
		"create multisig missing metadata": {
			Msg:     &CreateMultisigMsg{Owners: owners(a, b, c), Threshold: 2},
			WantErr: errors.ErrMetadata,
		},
		"create multisig without owners": {
			Msg:     &CreateMultisigMsg{Metadata: meta, Threshold: 1},
			WantErr: errors.ErrEmpty,
		},
		"create multisig with zero threshold": {
			Msg:     &CreateMultisigMsg{Metadata: meta, Owners: owners(a, b, c)},
			WantErr: ErrInvalidThreshold,
		},
		"create multisig with too high threshold": {
			Msg:     &CreateMultisigMsg{Metadata: meta, Owners: owners(a, b, c), Threshold: 4},
			WantErr: ErrInvalidThreshold,
		},
		"create multisig with duplicated owner": {
			Msg:     &CreateMultisigMsg{Metadata: meta, Owners: owners(a, b, b), Threshold: 2},
			WantErr: ErrDuplicateOwner,
		},
		"create multisig with negative cool off": {
			Msg:     &CreateMultisigMsg{Metadata: meta, Owners: owners(a), Threshold: 1, CoolOffPeriod: -5},
			WantErr: errors.ErrInvalidInput,
		},
		"valid update multisig": {
			Msg: &UpdateMultisigMsg{Metadata: meta, MultisigID: quorumtest.SequenceID(1), Owners: owners(a, b), Threshold: 1},
		},
		"update multisig without id": {
			Msg:     &UpdateMultisigMsg{Metadata: meta, Owners: owners(a, b), Threshold: 1},
			WantErr: errors.ErrEmpty,
		},
		"valid create proposal": {
			Msg: &CreateProposalMsg{
				Metadata:     meta,
				MultisigID:   quorumtest.SequenceID(1),
				Instructions: []*SubOperation{op},
				Title:        "pay the rent",
				ExpiresAt:    5000,
			},
		},
		"create proposal without instructions": {
			Msg: &CreateProposalMsg{
				Metadata:   meta,
				MultisigID: quorumtest.SequenceID(1),
				ExpiresAt:  5000,
			},
			WantErr: errors.ErrEmpty,
		},
		"create proposal without expiration": {
			Msg: &CreateProposalMsg{
				Metadata:     meta,
				MultisigID:   quorumtest.SequenceID(1),
				Instructions: []*SubOperation{op},
			},
			WantErr: errors.ErrInvalidInput,
		},
		"create proposal with too long description": {
			Msg: &CreateProposalMsg{
				Metadata:     meta,
				MultisigID:   quorumtest.SequenceID(1),
				Instructions: []*SubOperation{op},
				Description:  string(make([]byte, maxDescriptionLength+1)),
				ExpiresAt:    5000,
			},
			WantErr: errors.ErrInvalidInput,
		},
		"valid approve": {
			Msg: &ApproveProposalMsg{Metadata: meta, ProposalID: quorumtest.SequenceID(1)},
		},
		"approve without proposal": {
			Msg:     &ApproveProposalMsg{Metadata: meta},
			WantErr: errors.ErrEmpty,
		},
		"reject without metadata": {
			Msg:     &RejectProposalMsg{ProposalID: quorumtest.SequenceID(1)},
			WantErr: errors.ErrMetadata,
		},
		"valid execute": {
			Msg: &ExecuteProposalMsg{
				Metadata:   meta,
				ProposalID: quorumtest.SequenceID(1),
				Accounts:   []*AccountMeta{{Address: a.Address()}},
			},
		},
		"execute with invalid account": {
			Msg: &ExecuteProposalMsg{
				Metadata:   meta,
				ProposalID: quorumtest.SequenceID(1),
				Accounts:   []*AccountMeta{{Address: []byte("bad")}},
			},
			WantErr: errors.ErrInvalidInput,
		},
		"update configuration without patch": {
			Msg:     &UpdateConfigurationMsg{Metadata: meta},
			WantErr: errors.ErrEmpty,
		},
		"update configuration": {
			Msg: &UpdateConfigurationMsg{Metadata: meta, Patch: &Configuration{MaxOwners: 7}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %s", err)
			}
		})
	}
}
