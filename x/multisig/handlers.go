package multisig

import (
	"encoding/hex"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/settings"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterRoutes will instantiate and register all handlers in this package.
//
// The router is used to replay sub operations of executed proposals. It is
// usually the same router this function registers handlers with.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator, signers SignerAuth, mover cash.CoinMover, decoder Decoder, router quorum.Handler) {
	r.Handle(pathCreateMultisigMsg, NewCreateMultisigHandler(auth, mover))
	r.Handle(pathUpdateMultisigMsg, NewUpdateMultisigHandler(auth))
	r.Handle(pathCreateProposalMsg, NewCreateProposalHandler(auth, mover))
	votes := NewVoteHandler(auth)
	r.Handle(pathApproveProposalMsg, votes)
	r.Handle(pathRejectProposalMsg, votes)
	r.Handle(pathExecuteProposalMsg, NewExecuteProposalHandler(signers, decoder, router))
	r.Handle(pathUpdateConfigurationMsg, gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

// RegisterQuery register queries from buckets in this package
func RegisterQuery(qr quorum.QueryRouter) {
	NewMultisigBucket().Register("multisigs", qr)
	NewProposalBucket().Register("proposals", qr)
	NewVoteBucket().Register("votes", qr)
}

func blockNow(ctx quorum.Context) (quorum.UnixTime, error) {
	now, err := quorum.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	return quorum.AsUnixTime(now), nil
}

func tag(key string, value []byte) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: value}
}

// CreateMultisigHandler creates a new multisig and charges the creation fee
// declared in the authority registry.
type CreateMultisigHandler struct {
	auth   x.Authenticator
	bucket MultisigBucket
	mover  cash.CoinMover
}

var _ quorum.Handler = CreateMultisigHandler{}

// NewCreateMultisigHandler returns a handler for CreateMultisigMsg.
func NewCreateMultisigHandler(auth x.Authenticator, mover cash.CoinMover) CreateMultisigHandler {
	return CreateMultisigHandler{
		auth:   auth,
		bucket: NewMultisigBucket(),
		mover:  mover,
	}
}

func (h CreateMultisigHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: createMultisigCost}, nil
}

func (h CreateMultisigHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, creator, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := chargeFee(db, h.mover, reg, creator, reg.MultisigCreationFee); err != nil {
		return nil, err
	}

	m := &Multisig{
		Metadata:      &quorum.Metadata{Schema: 1},
		Owners:        msg.Owners,
		Threshold:     msg.Threshold,
		Label:         msg.Label,
		CoolOffPeriod: msg.CoolOffPeriod,
		OwnerSetSeqno: 1,
		CreatedAt:     now,
		CreatedBy:     creator,
	}
	id, err := h.bucket.Create(db, m)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store multisig")
	}
	quorum.GetLogger(ctx).Info("multisig created",
		"multisig", hex.EncodeToString(id), "owners", len(m.Owners), "threshold", m.Threshold)

	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			tag("multisig-id", id),
			tag("authority", m.Authority),
		},
	}, nil
}

func (h CreateMultisigHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*CreateMultisigMsg, quorum.Address, *settings.Settings, error) {
	var msg CreateMultisigMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	creator := x.MainSigner(ctx, h.auth)
	if creator == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(msg.Owners) > int(conf.MaxOwners) {
		return nil, nil, nil, errors.Wrapf(errors.ErrInvalidInput, "at most %d owners allowed", conf.MaxOwners)
	}
	reg, err := settings.Load(db)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, creator.Address(), reg, nil
}

// UpdateMultisigHandler replaces the owner set, threshold, label and cool
// off period of a multisig. Only the multisig authority can do it, so this
// message is normally a sub operation of an executed proposal.
type UpdateMultisigHandler struct {
	auth   x.Authenticator
	bucket MultisigBucket
}

var _ quorum.Handler = UpdateMultisigHandler{}

// NewUpdateMultisigHandler returns a handler for UpdateMultisigMsg.
func NewUpdateMultisigHandler(auth x.Authenticator) UpdateMultisigHandler {
	return UpdateMultisigHandler{
		auth:   auth,
		bucket: NewMultisigBucket(),
	}
}

func (h UpdateMultisigHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: updateMultisigCost}, nil
}

func (h UpdateMultisigHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, m, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	m.Owners = msg.Owners
	m.Threshold = msg.Threshold
	m.Label = msg.Label
	m.CoolOffPeriod = msg.CoolOffPeriod
	// Any change invalidates proposals that are still in flight.
	m.OwnerSetSeqno++
	if err := h.bucket.Update(db, msg.MultisigID, m); err != nil {
		return nil, errors.Wrap(err, "cannot store multisig")
	}
	return &quorum.DeliverResult{}, nil
}

func (h UpdateMultisigHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*UpdateMultisigMsg, *Multisig, error) {
	var msg UpdateMultisigMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	m, err := h.bucket.GetMultisig(db, msg.MultisigID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, m.Authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "multisig authority required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if len(msg.Owners) > int(conf.MaxOwners) {
		return nil, nil, errors.Wrapf(errors.ErrInvalidInput, "at most %d owners allowed", conf.MaxOwners)
	}
	return &msg, m, nil
}

// CreateProposalHandler stores a new proposal submitted by one of the
// multisig owners.
type CreateProposalHandler struct {
	auth      x.Authenticator
	multisigs MultisigBucket
	proposals ProposalBucket
	mover     cash.CoinMover
}

var _ quorum.Handler = CreateProposalHandler{}

// NewCreateProposalHandler returns a handler for CreateProposalMsg.
func NewCreateProposalHandler(auth x.Authenticator, mover cash.CoinMover) CreateProposalHandler {
	return CreateProposalHandler{
		auth:      auth,
		multisigs: NewMultisigBucket(),
		proposals: NewProposalBucket(),
		mover:     mover,
	}
}

func (h CreateProposalHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: createProposalCost}, nil
}

func (h CreateProposalHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	req, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := chargeFee(db, h.mover, req.registry, req.proposer, req.registry.ProposalCreationFee); err != nil {
		return nil, err
	}

	p := &Proposal{
		Metadata:      &quorum.Metadata{Schema: 1},
		MultisigID:    req.msg.MultisigID,
		OwnerSetSeqno: req.multisig.OwnerSetSeqno,
		Proposer:      req.proposer,
		Instructions:  req.msg.Instructions,
		Title:         req.msg.Title,
		Description:   req.msg.Description,
		Operation:     req.msg.Operation,
		CreatedAt:     req.now,
		ExpiresAt:     req.msg.ExpiresAt,
		Status:        ProposalStatus_Active,
	}
	id, err := h.proposals.Create(db, p)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			tag("multisig-id", req.msg.MultisigID),
			tag("proposal-id", id),
		},
	}, nil
}

type proposalRequest struct {
	msg      *CreateProposalMsg
	multisig *Multisig
	registry *settings.Settings
	proposer quorum.Address
	now      quorum.UnixTime
}

func (h CreateProposalHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*proposalRequest, error) {
	var msg CreateProposalMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "proposer signature required")
	}
	proposer := signer.Address()

	m, err := h.multisigs.GetMultisig(db, msg.MultisigID)
	if err != nil {
		return nil, err
	}
	if !m.IsOwner(proposer) {
		return nil, errors.Wrapf(ErrNotAnOwner, "proposer %s", proposer)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if len(msg.Instructions) > int(conf.MaxInstructions) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "at most %d instructions allowed", conf.MaxInstructions)
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	// Even with an instant quorum the cool off period must be able to
	// elapse before the proposal expires.
	if int64(msg.ExpiresAt-now) <= m.CoolOffPeriod {
		return nil, errors.Wrapf(ErrExpiryBeforeCoolOff, "expires in %d seconds, cool off period is %d",
			msg.ExpiresAt-now, m.CoolOffPeriod)
	}
	reg, err := settings.Load(db)
	if err != nil {
		return nil, err
	}
	return &proposalRequest{
		msg:      &msg,
		multisig: m,
		registry: reg,
		proposer: proposer,
		now:      now,
	}, nil
}

// VoteHandler records approvals and rejections in the vote ledger and
// updates the proposal status right after every vote.
type VoteHandler struct {
	auth      x.Authenticator
	multisigs MultisigBucket
	proposals ProposalBucket
	votes     VoteBucket
}

var _ quorum.Handler = VoteHandler{}

// NewVoteHandler returns a handler for both ApproveProposalMsg and
// RejectProposalMsg.
func NewVoteHandler(auth x.Authenticator) VoteHandler {
	return VoteHandler{
		auth:      auth,
		multisigs: NewMultisigBucket(),
		proposals: NewProposalBucket(),
		votes:     NewVoteBucket(),
	}
}

func (h VoteHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: voteCost}, nil
}

func (h VoteHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	req, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	vote := &Vote{
		Metadata:   &quorum.Metadata{Schema: 1},
		ProposalID: req.proposalID,
		Voter:      req.voter,
		Choice:     req.choice,
		CastAt:     now,
	}
	if err := h.votes.Cast(db, vote); err != nil {
		return nil, errors.Wrap(err, "cannot store vote")
	}

	approvals, rejections, err := h.votes.Tally(db, req.proposalID)
	if err != nil {
		return nil, err
	}
	p := req.proposal
	p.Status = resolve(p.Status, approvals, rejections, uint32(len(req.multisig.Owners)), req.multisig.Threshold)
	if p.Status == ProposalStatus_Passed && p.PassedAt.IsZero() {
		p.PassedAt = now
	}
	if err := h.proposals.Update(db, req.proposalID, p); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	return &quorum.DeliverResult{
		Log: p.Status.String(),
		Tags: []common.KVPair{
			tag("proposal-id", req.proposalID),
			tag("proposal-status", []byte(p.Status.String())),
		},
	}, nil
}

type voteRequest struct {
	proposalID []byte
	proposal   *Proposal
	multisig   *Multisig
	voter      quorum.Address
	choice     VoteChoice
}

func (h VoteHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*voteRequest, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	var (
		proposalID []byte
		choice     VoteChoice
	)
	switch m := msg.(type) {
	case *ApproveProposalMsg:
		proposalID, choice = m.ProposalID, VoteChoice_Approve
	case *RejectProposalMsg:
		proposalID, choice = m.ProposalID, VoteChoice_Reject
	default:
		return nil, errors.Wrapf(errors.ErrInvalidType, "%T is not a vote", msg)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "voter signature required")
	}
	voter := signer.Address()

	p, err := h.proposals.GetProposal(db, proposalID)
	if err != nil {
		return nil, err
	}
	if p.Status != ProposalStatus_Active {
		return nil, errors.Wrapf(ErrProposalNotActive, "status %s", p.Status)
	}
	m, err := h.multisigs.GetMultisig(db, p.MultisigID)
	if err != nil {
		return nil, err
	}
	if p.OwnerSetSeqno != m.OwnerSetSeqno {
		return nil, errors.Wrapf(ErrOwnerSetChanged, "proposal for %d, multisig at %d", p.OwnerSetSeqno, m.OwnerSetSeqno)
	}
	if !m.IsOwner(voter) {
		return nil, errors.Wrapf(ErrNotAnOwner, "voter %s", voter)
	}
	switch voted, err := h.votes.HasVoted(db, proposalID, voter); {
	case err != nil:
		return nil, err
	case voted:
		return nil, errors.Wrapf(ErrAlreadyVoted, "voter %s", voter)
	}
	return &voteRequest{
		proposalID: proposalID,
		proposal:   p,
		multisig:   m,
		voter:      voter,
		choice:     choice,
	}, nil
}
