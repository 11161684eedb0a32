package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

const (
	maxOwnerNameLength   = 32
	maxLabelLength       = 64
	maxTitleLength       = 128
	maxDescriptionLength = 1024
	maxTargetLength      = 64
)

// Validate returns an error if the owner address or name is not valid.
func (o *Owner) Validate() error {
	if o == nil {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	if err := o.Address.Validate(); err != nil {
		return err
	}
	if len(o.Name) > maxOwnerNameLength {
		return errors.Wrapf(errors.ErrInvalidInput, "name longer than %d characters", maxOwnerNameLength)
	}
	return nil
}

// validateOwnerSet returns an error if given owners and threshold cannot
// form a multisig. This check is done on model and messages so instead of
// copying the code it is extracted into this function.
func validateOwnerSet(owners []*Owner, threshold uint32) error {
	if len(owners) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no owners")
	}
	seen := make(map[string]struct{}, len(owners))
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner %d", i)
		}
		if _, ok := seen[string(o.Address)]; ok {
			return errors.Wrapf(ErrDuplicateOwner, "owner %s", o.Address)
		}
		seen[string(o.Address)] = struct{}{}
	}
	if threshold < 1 || int(threshold) > len(owners) {
		return errors.Wrapf(ErrInvalidThreshold, "threshold %d for %d owners", threshold, len(owners))
	}
	return nil
}

// maxCoolOff is a hundred years. Cool off arithmetic on block times stays
// far from the int64 limits.
const maxCoolOff = 100 * 365 * 24 * 60 * 60

func validateCoolOff(seconds int64) error {
	switch {
	case seconds < 0:
		return errors.Wrap(errors.ErrInvalidInput, "negative cool off period")
	case seconds > maxCoolOff:
		return errors.Wrapf(errors.ErrInvalidInput, "cool off period over %d seconds", maxCoolOff)
	}
	return nil
}

func validateLabel(label string) error {
	if len(label) > maxLabelLength {
		return errors.Wrapf(errors.ErrInvalidInput, "longer than %d characters", maxLabelLength)
	}
	return nil
}

func copyOwners(owners []*Owner) []*Owner {
	if owners == nil {
		return nil
	}
	cpy := make([]*Owner, len(owners))
	for i, o := range owners {
		cpy[i] = &Owner{Address: o.Address.Clone(), Name: o.Name}
	}
	return cpy
}

var _ orm.CloneableData = (*Multisig)(nil)

// Validate ensures the multisig is in a valid state.
func (m *Multisig) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owners", validateOwnerSet(m.Owners, m.Threshold))
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	errs = errors.AppendField(errs, "CoolOffPeriod", validateCoolOff(m.CoolOffPeriod))
	if m.OwnerSetSeqno < 1 {
		errs = errors.Append(errs, errors.Field("OwnerSetSeqno", errors.ErrInvalidState, "must start at 1"))
	}
	errs = errors.AppendField(errs, "CreatedAt", m.CreatedAt.Validate())
	// Multisigs declared in genesis have no creator.
	if len(m.CreatedBy) != 0 {
		errs = errors.AppendField(errs, "CreatedBy", m.CreatedBy.Validate())
	}
	return errs
}

// Copy returns a deep copy of this multisig.
func (m *Multisig) Copy() orm.CloneableData {
	return &Multisig{
		Metadata:      m.Metadata.Copy(),
		Owners:        copyOwners(m.Owners),
		Threshold:     m.Threshold,
		Label:         m.Label,
		Authority:     m.Authority.Clone(),
		CoolOffPeriod: m.CoolOffPeriod,
		OwnerSetSeqno: m.OwnerSetSeqno,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy.Clone(),
	}
}

// IsOwner returns true if given address belongs to the owner set.
func (m *Multisig) IsOwner(addr quorum.Address) bool {
	for _, o := range m.Owners {
		if o.Address.Equals(addr) {
			return true
		}
	}
	return false
}

// Validate returns an error if the sub operation has no target or
// references an invalid account. The payload is not inspected.
func (s *SubOperation) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrEmpty, "sub operation")
	}
	var errs error
	switch n := len(s.Target); {
	case n == 0:
		errs = errors.Append(errs, errors.Field("Target", errors.ErrEmpty, "required"))
	case n > maxTargetLength:
		errs = errors.Append(errs, errors.Field("Target", errors.ErrInvalidInput, "too long"))
	}
	for i, a := range s.Accounts {
		if a == nil {
			errs = errors.Append(errs, errors.Field("Accounts", errors.ErrEmpty, "account %d", i))
			continue
		}
		if err := a.Address.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field("Accounts", err, "account %d", i))
		}
	}
	return errs
}

func validateInstructions(ops []*SubOperation) error {
	if len(ops) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no instructions")
	}
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
	}
	return nil
}

func copyInstructions(ops []*SubOperation) []*SubOperation {
	if ops == nil {
		return nil
	}
	cpy := make([]*SubOperation, len(ops))
	for i, op := range ops {
		var accounts []*AccountMeta
		for _, a := range op.Accounts {
			accounts = append(accounts, &AccountMeta{
				Address:    a.Address.Clone(),
				IsSigner:   a.IsSigner,
				IsWritable: a.IsWritable,
			})
		}
		cpy[i] = &SubOperation{
			Target:   op.Target,
			Accounts: accounts,
			Payload:  append([]byte(nil), op.Payload...),
		}
	}
	return cpy
}

func validateTexts(title, description string) error {
	var errs error
	if len(title) > maxTitleLength {
		errs = errors.Append(errs, errors.Field("Title", errors.ErrInvalidInput, "longer than %d characters", maxTitleLength))
	}
	if len(description) > maxDescriptionLength {
		errs = errors.Append(errs, errors.Field("Description", errors.ErrInvalidInput, "longer than %d characters", maxDescriptionLength))
	}
	return errs
}

var _ orm.CloneableData = (*Proposal)(nil)

// Validate ensures the proposal is in a valid state.
func (p *Proposal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if len(p.MultisigID) == 0 {
		errs = errors.Append(errs, errors.Field("MultisigID", errors.ErrEmpty, "required"))
	}
	if p.OwnerSetSeqno < 1 {
		errs = errors.Append(errs, errors.Field("OwnerSetSeqno", errors.ErrInvalidState, "must be at least 1"))
	}
	errs = errors.AppendField(errs, "Proposer", p.Proposer.Validate())
	errs = errors.AppendField(errs, "Instructions", validateInstructions(p.Instructions))
	errs = errors.Append(errs, validateTexts(p.Title, p.Description))
	errs = errors.AppendField(errs, "CreatedAt", p.CreatedAt.Validate())
	if p.ExpiresAt <= p.CreatedAt {
		errs = errors.Append(errs, errors.Field("ExpiresAt", errors.ErrInvalidState, "must be after creation"))
	}
	if _, ok := ProposalStatus_name[int32(p.Status)]; !ok || p.Status == ProposalStatus_Invalid {
		errs = errors.Append(errs, errors.Field("Status", errors.ErrInvalidState, "unknown status %d", p.Status))
	}
	errs = errors.AppendField(errs, "PassedAt", p.PassedAt.Validate())
	errs = errors.AppendField(errs, "ExecutedAt", p.ExecutedAt.Validate())
	return errs
}

// Copy returns a deep copy of this proposal.
func (p *Proposal) Copy() orm.CloneableData {
	id := make([]byte, len(p.MultisigID))
	copy(id, p.MultisigID)
	return &Proposal{
		Metadata:      p.Metadata.Copy(),
		MultisigID:    id,
		OwnerSetSeqno: p.OwnerSetSeqno,
		Proposer:      p.Proposer.Clone(),
		Instructions:  copyInstructions(p.Instructions),
		Title:         p.Title,
		Description:   p.Description,
		Operation:     p.Operation,
		CreatedAt:     p.CreatedAt,
		ExpiresAt:     p.ExpiresAt,
		Status:        p.Status,
		PassedAt:      p.PassedAt,
		ExecutedAt:    p.ExecutedAt,
	}
}

var _ orm.CloneableData = (*Vote)(nil)

// Validate ensures the vote is in a valid state.
func (v *Vote) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	if len(v.ProposalID) == 0 {
		errs = errors.Append(errs, errors.Field("ProposalID", errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Voter", v.Voter.Validate())
	if v.Choice != VoteChoice_Approve && v.Choice != VoteChoice_Reject {
		errs = errors.Append(errs, errors.Field("Choice", errors.ErrInvalidInput, "unknown choice %d", v.Choice))
	}
	errs = errors.AppendField(errs, "CastAt", v.CastAt.Validate())
	return errs
}

// Copy returns a deep copy of this vote.
func (v *Vote) Copy() orm.CloneableData {
	id := make([]byte, len(v.ProposalID))
	copy(id, v.ProposalID)
	return &Vote{
		Metadata:   v.Metadata.Copy(),
		ProposalID: id,
		Voter:      v.Voter.Clone(),
		Choice:     v.Choice,
		CastAt:     v.CastAt,
	}
}

// MultisigBucket stores multisig accounts under a sequence generated ID.
type MultisigBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewMultisigBucket returns a bucket for multisig accounts.
func NewMultisigBucket() MultisigBucket {
	b := orm.NewBucket("multisigs", orm.NewSimpleObj(nil, &Multisig{}))
	return MultisigBucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create stores a new multisig. The derived authority is computed from the
// generated ID, so any value set on given multisig is overwritten.
func (b MultisigBucket) Create(db quorum.KVStore, m *Multisig) ([]byte, error) {
	id, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire ID")
	}
	m.Authority = AuthorityCondition(id).Address()
	if err := b.Save(db, orm.NewSimpleObj(id, m)); err != nil {
		return nil, err
	}
	return id, nil
}

// GetMultisig returns a multisig with given ID.
func (b MultisigBucket) GetMultisig(db quorum.ReadOnlyKVStore, id []byte) (*Multisig, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "multisig %X", id)
	}
	m, ok := obj.Value().(*Multisig)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
	}
	return m, nil
}

// Update overwrites the multisig stored under given ID.
func (b MultisigBucket) Update(db quorum.KVStore, id []byte, m *Multisig) error {
	return b.Save(db, orm.NewSimpleObj(id, m))
}

// ProposalBucket stores proposals. Proposals are indexed by multisig.
type ProposalBucket struct {
	orm.IDGenBucket
}

// NewProposalBucket returns a bucket for proposals.
func NewProposalBucket() ProposalBucket {
	b := orm.NewBucket("proposals", orm.NewSimpleObj(nil, &Proposal{})).
		WithIndex("multisig", proposalMultisigIndexer)
	return ProposalBucket{
		IDGenBucket: orm.WithSeqIDGenerator(b, orm.SeqID),
	}
}

func proposalMultisigIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	p, ok := obj.Value().(*Proposal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidType, "not a proposal: %T", obj.Value())
	}
	return p.MultisigID, nil
}

// GetProposal returns a proposal with given ID.
func (b ProposalBucket) GetProposal(db quorum.ReadOnlyKVStore, id []byte) (*Proposal, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "proposal %X", id)
	}
	p, ok := obj.Value().(*Proposal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
	}
	return p, nil
}

// Create stores a new proposal and returns its ID.
func (b ProposalBucket) Create(db quorum.KVStore, p *Proposal) ([]byte, error) {
	obj, err := b.IDGenBucket.Create(db, p)
	if err != nil {
		return nil, err
	}
	return obj.Key(), nil
}

// Update overwrites the proposal stored under given ID.
func (b ProposalBucket) Update(db quorum.KVStore, id []byte, p *Proposal) error {
	return b.Save(db, orm.NewSimpleObj(id, p))
}

// ByMultisig returns all proposals created for given multisig.
func (b ProposalBucket) ByMultisig(db quorum.ReadOnlyKVStore, multisigID []byte) ([]*Proposal, error) {
	objs, err := b.GetIndexed(db, "multisig", multisigID)
	if err != nil {
		return nil, err
	}
	res := make([]*Proposal, 0, len(objs))
	for _, obj := range objs {
		p, ok := obj.Value().(*Proposal)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
		}
		res = append(res, p)
	}
	return res, nil
}

// VoteBucket is the vote ledger. A vote is stored under the proposal ID
// followed by the voter address and is never overwritten.
type VoteBucket struct {
	orm.Bucket
}

// NewVoteBucket returns a bucket for votes.
func NewVoteBucket() VoteBucket {
	b := orm.NewBucket("votes", orm.NewSimpleObj(nil, &Vote{})).
		WithIndex("proposal", voteProposalIndexer)
	return VoteBucket{Bucket: b}
}

func voteProposalIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	v, ok := obj.Value().(*Vote)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidType, "not a vote: %T", obj.Value())
	}
	return v.ProposalID, nil
}

// voteKey returns the primary key of a vote.
func voteKey(proposalID []byte, voter quorum.Address) []byte {
	key := make([]byte, 0, len(proposalID)+len(voter))
	key = append(key, proposalID...)
	return append(key, voter...)
}

// HasVoted returns true if given voter has a vote recorded for the
// proposal.
func (b VoteBucket) HasVoted(db quorum.ReadOnlyKVStore, proposalID []byte, voter quorum.Address) (bool, error) {
	obj, err := b.Get(db, voteKey(proposalID, voter))
	if err != nil {
		return false, errors.Wrap(err, "bucket lookup")
	}
	return obj != nil && obj.Value() != nil, nil
}

// Cast records a vote. It fails with ErrAlreadyVoted if the voter already
// voted on this proposal.
func (b VoteBucket) Cast(db quorum.KVStore, v *Vote) error {
	switch voted, err := b.HasVoted(db, v.ProposalID, v.Voter); {
	case err != nil:
		return err
	case voted:
		return errors.Wrapf(ErrAlreadyVoted, "voter %s", v.Voter)
	}
	return b.Save(db, orm.NewSimpleObj(voteKey(v.ProposalID, v.Voter), v))
}

// Tally counts the votes recorded for given proposal.
func (b VoteBucket) Tally(db quorum.ReadOnlyKVStore, proposalID []byte) (approvals, rejections uint32, err error) {
	objs, err := b.GetIndexed(db, "proposal", proposalID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "votes lookup")
	}
	for _, obj := range objs {
		v, ok := obj.Value().(*Vote)
		if !ok {
			return 0, 0, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
		}
		switch v.Choice {
		case VoteChoice_Approve:
			approvals++
		case VoteChoice_Reject:
			rejections++
		}
	}
	return approvals, rejections, nil
}
