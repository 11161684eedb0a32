package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
)

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus int32

const (
	ProposalStatus_Invalid  ProposalStatus = 0
	ProposalStatus_Active   ProposalStatus = 1
	ProposalStatus_Passed   ProposalStatus = 2
	ProposalStatus_Executed ProposalStatus = 3
	ProposalStatus_Failed   ProposalStatus = 4
)

var ProposalStatus_name = map[int32]string{
	0: "PROPOSAL_STATUS_INVALID",
	1: "PROPOSAL_STATUS_ACTIVE",
	2: "PROPOSAL_STATUS_PASSED",
	3: "PROPOSAL_STATUS_EXECUTED",
	4: "PROPOSAL_STATUS_FAILED",
}

func (x ProposalStatus) String() string {
	return proto.EnumName(ProposalStatus_name, int32(x))
}

// VoteChoice is the decision of a single owner.
type VoteChoice int32

const (
	VoteChoice_Invalid VoteChoice = 0
	VoteChoice_Approve VoteChoice = 1
	VoteChoice_Reject  VoteChoice = 2
)

var VoteChoice_name = map[int32]string{
	0: "VOTE_CHOICE_INVALID",
	1: "VOTE_CHOICE_APPROVE",
	2: "VOTE_CHOICE_REJECT",
}

func (x VoteChoice) String() string {
	return proto.EnumName(VoteChoice_name, int32(x))
}

// Owner is a member of a multisig owner set.
type Owner struct {
	Address quorum.Address `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	// Name is a human readable label of the owner.
	Name string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

type ownerPB Owner

func (m *ownerPB) Reset()         { *m = ownerPB{} }
func (m *ownerPB) String() string { return proto.CompactTextString(m) }
func (*ownerPB) ProtoMessage()    {}

func (m *Owner) Marshal() ([]byte, error) { return proto.Marshal((*ownerPB)(m)) }

func (m *Owner) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*ownerPB)(m)) }

// Multisig is a shared authority controlled by a set of owners.
type Multisig struct {
	Metadata  *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	Owners    []*Owner         `protobuf:"bytes,2,rep,name=owners" json:"owners,omitempty"`
	Threshold uint32           `protobuf:"varint,3,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Label     string           `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	// Authority is the address of the derived signing identity. It is
	// computed from the multisig ID and has no private key.
	Authority quorum.Address `protobuf:"bytes,5,opt,name=authority,proto3" json:"authority,omitempty"`
	// CoolOffPeriod is the number of seconds between reaching the quorum
	// and the earliest allowed execution.
	CoolOffPeriod int64 `protobuf:"varint,6,opt,name=cool_off_period,json=coolOffPeriod,proto3" json:"cool_off_period,omitempty"`
	// OwnerSetSeqno is incremented on every owner set or threshold change.
	OwnerSetSeqno uint64          `protobuf:"varint,7,opt,name=owner_set_seqno,json=ownerSetSeqno,proto3" json:"owner_set_seqno,omitempty"`
	CreatedAt     quorum.UnixTime `protobuf:"varint,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CreatedBy     quorum.Address  `protobuf:"bytes,9,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
}

type multisigPB Multisig

func (m *multisigPB) Reset()         { *m = multisigPB{} }
func (m *multisigPB) String() string { return proto.CompactTextString(m) }
func (*multisigPB) ProtoMessage()    {}

func (m *Multisig) Marshal() ([]byte, error) { return proto.Marshal((*multisigPB)(m)) }

func (m *Multisig) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*multisigPB)(m)) }

func (m *Multisig) String() string { return proto.CompactTextString((*multisigPB)(m)) }

// AccountMeta references an account used by a sub operation.
type AccountMeta struct {
	Address    quorum.Address `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	IsSigner   bool           `protobuf:"varint,2,opt,name=is_signer,json=isSigner,proto3" json:"is_signer,omitempty"`
	IsWritable bool           `protobuf:"varint,3,opt,name=is_writable,json=isWritable,proto3" json:"is_writable,omitempty"`
}

type accountMetaPB AccountMeta

func (m *accountMetaPB) Reset()         { *m = accountMetaPB{} }
func (m *accountMetaPB) String() string { return proto.CompactTextString(m) }
func (*accountMetaPB) ProtoMessage()    {}

func (m *AccountMeta) Marshal() ([]byte, error) { return proto.Marshal((*accountMetaPB)(m)) }

func (m *AccountMeta) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accountMetaPB)(m))
}

// SubOperation is a single message replayed when a proposal is executed.
type SubOperation struct {
	// Target is the route of the replayed message, for example cash/send.
	Target   string         `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	Accounts []*AccountMeta `protobuf:"bytes,2,rep,name=accounts" json:"accounts,omitempty"`
	// Payload is the serialized message.
	Payload []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

type subOperationPB SubOperation

func (m *subOperationPB) Reset()         { *m = subOperationPB{} }
func (m *subOperationPB) String() string { return proto.CompactTextString(m) }
func (*subOperationPB) ProtoMessage()    {}

func (m *SubOperation) Marshal() ([]byte, error) { return proto.Marshal((*subOperationPB)(m)) }

func (m *SubOperation) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*subOperationPB)(m))
}

// Proposal is a batch of sub operations waiting for the owners decision.
type Proposal struct {
	Metadata   *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	MultisigID []byte           `protobuf:"bytes,2,opt,name=multisig_id,json=multisigId,proto3" json:"multisig_id,omitempty"`
	// OwnerSetSeqno is the multisig owner set version this proposal was
	// created for.
	OwnerSetSeqno uint64          `protobuf:"varint,3,opt,name=owner_set_seqno,json=ownerSetSeqno,proto3" json:"owner_set_seqno,omitempty"`
	Proposer      quorum.Address  `protobuf:"bytes,4,opt,name=proposer,proto3" json:"proposer,omitempty"`
	Instructions  []*SubOperation `protobuf:"bytes,5,rep,name=instructions" json:"instructions,omitempty"`
	Title         string          `protobuf:"bytes,6,opt,name=title,proto3" json:"title,omitempty"`
	Description   string          `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	// Operation is an opaque kind tag set by the proposer.
	Operation  int32           `protobuf:"varint,8,opt,name=operation,proto3" json:"operation,omitempty"`
	CreatedAt  quorum.UnixTime `protobuf:"varint,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt  quorum.UnixTime `protobuf:"varint,10,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	Status     ProposalStatus  `protobuf:"varint,11,opt,name=status,proto3" json:"status,omitempty"`
	PassedAt   quorum.UnixTime `protobuf:"varint,12,opt,name=passed_at,json=passedAt,proto3" json:"passed_at,omitempty"`
	ExecutedAt quorum.UnixTime `protobuf:"varint,13,opt,name=executed_at,json=executedAt,proto3" json:"executed_at,omitempty"`
}

type proposalPB Proposal

func (m *proposalPB) Reset()         { *m = proposalPB{} }
func (m *proposalPB) String() string { return proto.CompactTextString(m) }
func (*proposalPB) ProtoMessage()    {}

func (m *Proposal) Marshal() ([]byte, error) { return proto.Marshal((*proposalPB)(m)) }

func (m *Proposal) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*proposalPB)(m)) }

func (m *Proposal) String() string { return proto.CompactTextString((*proposalPB)(m)) }

// Vote is a single owner decision on a proposal.
type Vote struct {
	Metadata   *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	ProposalID []byte           `protobuf:"bytes,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Voter      quorum.Address   `protobuf:"bytes,3,opt,name=voter,proto3" json:"voter,omitempty"`
	Choice     VoteChoice       `protobuf:"varint,4,opt,name=choice,proto3" json:"choice,omitempty"`
	CastAt     quorum.UnixTime  `protobuf:"varint,5,opt,name=cast_at,json=castAt,proto3" json:"cast_at,omitempty"`
}

type votePB Vote

func (m *votePB) Reset()         { *m = votePB{} }
func (m *votePB) String() string { return proto.CompactTextString(m) }
func (*votePB) ProtoMessage()    {}

func (m *Vote) Marshal() ([]byte, error) { return proto.Marshal((*votePB)(m)) }

func (m *Vote) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*votePB)(m)) }

// CreateMultisigMsg creates a new multisig. The main signer pays the
// creation fee.
type CreateMultisigMsg struct {
	Metadata      *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	Owners        []*Owner         `protobuf:"bytes,2,rep,name=owners" json:"owners,omitempty"`
	Threshold     uint32           `protobuf:"varint,3,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Label         string           `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	CoolOffPeriod int64            `protobuf:"varint,5,opt,name=cool_off_period,json=coolOffPeriod,proto3" json:"cool_off_period,omitempty"`
}

type createMultisigMsgPB CreateMultisigMsg

func (m *createMultisigMsgPB) Reset()         { *m = createMultisigMsgPB{} }
func (m *createMultisigMsgPB) String() string { return proto.CompactTextString(m) }
func (*createMultisigMsgPB) ProtoMessage()    {}

func (m *CreateMultisigMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createMultisigMsgPB)(m))
}

func (m *CreateMultisigMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createMultisigMsgPB)(m))
}

// UpdateMultisigMsg replaces the configuration of an existing multisig. It
// must be authorized by the multisig authority itself.
type UpdateMultisigMsg struct {
	Metadata      *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	MultisigID    []byte           `protobuf:"bytes,2,opt,name=multisig_id,json=multisigId,proto3" json:"multisig_id,omitempty"`
	Owners        []*Owner         `protobuf:"bytes,3,rep,name=owners" json:"owners,omitempty"`
	Threshold     uint32           `protobuf:"varint,4,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Label         string           `protobuf:"bytes,5,opt,name=label,proto3" json:"label,omitempty"`
	CoolOffPeriod int64            `protobuf:"varint,6,opt,name=cool_off_period,json=coolOffPeriod,proto3" json:"cool_off_period,omitempty"`
}

type updateMultisigMsgPB UpdateMultisigMsg

func (m *updateMultisigMsgPB) Reset()         { *m = updateMultisigMsgPB{} }
func (m *updateMultisigMsgPB) String() string { return proto.CompactTextString(m) }
func (*updateMultisigMsgPB) ProtoMessage()    {}

func (m *UpdateMultisigMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateMultisigMsgPB)(m))
}

func (m *UpdateMultisigMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateMultisigMsgPB)(m))
}

// CreateProposalMsg submits a batch of sub operations for the owners vote.
type CreateProposalMsg struct {
	Metadata     *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	MultisigID   []byte           `protobuf:"bytes,2,opt,name=multisig_id,json=multisigId,proto3" json:"multisig_id,omitempty"`
	Instructions []*SubOperation  `protobuf:"bytes,3,rep,name=instructions" json:"instructions,omitempty"`
	Operation    int32            `protobuf:"varint,4,opt,name=operation,proto3" json:"operation,omitempty"`
	Title        string           `protobuf:"bytes,5,opt,name=title,proto3" json:"title,omitempty"`
	Description  string           `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	ExpiresAt    quorum.UnixTime  `protobuf:"varint,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

type createProposalMsgPB CreateProposalMsg

func (m *createProposalMsgPB) Reset()         { *m = createProposalMsgPB{} }
func (m *createProposalMsgPB) String() string { return proto.CompactTextString(m) }
func (*createProposalMsgPB) ProtoMessage()    {}

func (m *CreateProposalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createProposalMsgPB)(m))
}

func (m *CreateProposalMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createProposalMsgPB)(m))
}

// ApproveProposalMsg casts an approving vote.
type ApproveProposalMsg struct {
	Metadata   *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	ProposalID []byte           `protobuf:"bytes,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
}

type approveProposalMsgPB ApproveProposalMsg

func (m *approveProposalMsgPB) Reset()         { *m = approveProposalMsgPB{} }
func (m *approveProposalMsgPB) String() string { return proto.CompactTextString(m) }
func (*approveProposalMsgPB) ProtoMessage()    {}

func (m *ApproveProposalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*approveProposalMsgPB)(m))
}

func (m *ApproveProposalMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*approveProposalMsgPB)(m))
}

// RejectProposalMsg casts a rejecting vote.
type RejectProposalMsg struct {
	Metadata   *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	ProposalID []byte           `protobuf:"bytes,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
}

type rejectProposalMsgPB RejectProposalMsg

func (m *rejectProposalMsgPB) Reset()         { *m = rejectProposalMsgPB{} }
func (m *rejectProposalMsgPB) String() string { return proto.CompactTextString(m) }
func (*rejectProposalMsgPB) ProtoMessage()    {}

func (m *RejectProposalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rejectProposalMsgPB)(m))
}

func (m *RejectProposalMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rejectProposalMsgPB)(m))
}

// ExecuteProposalMsg replays a passed proposal. Accounts must list every
// account referenced by the stored instructions.
type ExecuteProposalMsg struct {
	Metadata   *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	ProposalID []byte           `protobuf:"bytes,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Accounts   []*AccountMeta   `protobuf:"bytes,3,rep,name=accounts" json:"accounts,omitempty"`
}

type executeProposalMsgPB ExecuteProposalMsg

func (m *executeProposalMsgPB) Reset()         { *m = executeProposalMsgPB{} }
func (m *executeProposalMsgPB) String() string { return proto.CompactTextString(m) }
func (*executeProposalMsgPB) ProtoMessage()    {}

func (m *ExecuteProposalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*executeProposalMsgPB)(m))
}

func (m *ExecuteProposalMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*executeProposalMsgPB)(m))
}

// Configuration holds the limits of this extension.
type Configuration struct {
	Metadata *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	// Owner is allowed to update the configuration.
	Owner quorum.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	// MaxOwners is the upper limit of a multisig owner set size.
	MaxOwners uint32 `protobuf:"varint,3,opt,name=max_owners,json=maxOwners,proto3" json:"max_owners,omitempty"`
	// MaxInstructions is the upper limit of a proposal batch size.
	MaxInstructions uint32 `protobuf:"varint,4,opt,name=max_instructions,json=maxInstructions,proto3" json:"max_instructions,omitempty"`
}

type configurationPB Configuration

func (m *configurationPB) Reset()         { *m = configurationPB{} }
func (m *configurationPB) String() string { return proto.CompactTextString(m) }
func (*configurationPB) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationPB)(m)) }

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationPB)(m))
}

func (m *Configuration) GetOwner() quorum.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

// UpdateConfigurationMsg patches the configuration. Only non zero fields
// of the patch are applied.
type UpdateConfigurationMsg struct {
	Metadata *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	Patch    *Configuration   `protobuf:"bytes,2,opt,name=patch" json:"patch,omitempty"`
}

type updateConfigurationMsgPB UpdateConfigurationMsg

func (m *updateConfigurationMsgPB) Reset()         { *m = updateConfigurationMsgPB{} }
func (m *updateConfigurationMsgPB) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgPB) ProtoMessage()    {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgPB)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateConfigurationMsgPB)(m))
}
