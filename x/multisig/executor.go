package multisig

import (
	"encoding/hex"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// SignerAuth authenticates the transaction signatures. It can also narrow
// down the signers visible to handlers called with the returned context.
type SignerAuth interface {
	x.Authenticator
	SetConditions(ctx quorum.Context, signers ...quorum.Condition) quorum.Context
}

// Decoder turns a stored sub operation into a message. It must return
// ErrUnknownTarget for targets that cannot be replayed.
type Decoder interface {
	Decode(target string, payload []byte) (quorum.Msg, error)
}

// DecoderFunc allows to use a function as a Decoder.
type DecoderFunc func(target string, payload []byte) (quorum.Msg, error)

// Decode calls the function.
func (fn DecoderFunc) Decode(target string, payload []byte) (quorum.Msg, error) {
	return fn(target, payload)
}

// ExecuteProposalHandler replays a passed proposal under the multisig
// authority. All sub operations succeed or none does.
type ExecuteProposalHandler struct {
	signers   SignerAuth
	decoder   Decoder
	router    quorum.Handler
	multisigs MultisigBucket
	proposals ProposalBucket
}

var _ quorum.Handler = ExecuteProposalHandler{}

// NewExecuteProposalHandler returns a handler for ExecuteProposalMsg. Sub
// operations are decoded with the decoder and delivered through the router.
func NewExecuteProposalHandler(signers SignerAuth, decoder Decoder, router quorum.Handler) ExecuteProposalHandler {
	return ExecuteProposalHandler{
		signers:   signers,
		decoder:   decoder,
		router:    router,
		multisigs: NewMultisigBucket(),
		proposals: NewProposalBucket(),
	}
}

// Check verifies that the proposal can be executed now. Sub operations are
// replayed only on deliver.
func (h ExecuteProposalHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: executeProposalCost}, nil
}

func (h ExecuteProposalHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	req, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res, err := h.replay(ctx, db, tx, req)
	if err != nil {
		return nil, err
	}

	p := req.proposal
	p.Status = ProposalStatus_Executed
	p.ExecutedAt = req.now
	if err := h.proposals.Update(db, req.proposalID, p); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	quorum.GetLogger(ctx).Info("proposal executed",
		"proposal", hex.EncodeToString(req.proposalID),
		"multisig", hex.EncodeToString(p.MultisigID),
		"instructions", len(p.Instructions))

	res.Tags = append(res.Tags,
		tag("proposal-id", req.proposalID),
		tag("proposal-status", []byte(p.Status.String())))
	return res, nil
}

type executeRequest struct {
	proposalID []byte
	proposal   *Proposal
	multisig   *Multisig
	now        quorum.UnixTime
}

func (h ExecuteProposalHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*executeRequest, error) {
	var msg ExecuteProposalMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.signers) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature required")
	}
	p, err := h.proposals.GetProposal(db, msg.ProposalID)
	if err != nil {
		return nil, err
	}
	m, err := h.multisigs.GetMultisig(db, p.MultisigID)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	if p.Status != ProposalStatus_Passed {
		return nil, errors.Wrapf(ErrNotEnoughApprovals, "status %s", p.Status)
	}
	if waited := int64(now - p.PassedAt); waited < m.CoolOffPeriod {
		return nil, errors.Wrapf(ErrCoolOffNotElapsed, "executable in %d seconds", m.CoolOffPeriod-waited)
	}
	if now >= p.ExpiresAt {
		return nil, errors.Wrapf(ErrProposalExpired, "expired at %d", p.ExpiresAt)
	}
	if p.OwnerSetSeqno != m.OwnerSetSeqno {
		return nil, errors.Wrapf(ErrOwnerSetChanged, "proposal for %d, multisig at %d", p.OwnerSetSeqno, m.OwnerSetSeqno)
	}
	if err := matchAccounts(p.Instructions, msg.Accounts); err != nil {
		return nil, err
	}
	return &executeRequest{
		proposalID: msg.ProposalID,
		proposal:   p,
		multisig:   m,
		now:        now,
	}, nil
}

// matchAccounts ensures that every account referenced by the instructions
// was supplied, and that writable accounts were supplied as writable.
func matchAccounts(ops []*SubOperation, supplied []*AccountMeta) error {
	writable := make(map[string]bool, len(supplied))
	for _, a := range supplied {
		writable[string(a.Address)] = writable[string(a.Address)] || a.IsWritable
	}
	for i, op := range ops {
		for _, a := range op.Accounts {
			w, ok := writable[string(a.Address)]
			if !ok {
				return errors.Wrapf(ErrAccountMismatch, "instruction %d: account %s not supplied", i, a.Address)
			}
			if a.IsWritable && !w {
				return errors.Wrapf(ErrAccountMismatch, "instruction %d: account %s must be writable", i, a.Address)
			}
		}
	}
	return nil
}

// replay delivers all instructions of the proposal in a cache wrap of the
// store. The cache is written only if every instruction succeeds.
func (h ExecuteProposalHandler) replay(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, req *executeRequest) (*quorum.DeliverResult, error) {
	cstore, ok := db.(quorum.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store cannot be cache wrapped", db)
	}
	cache := cstore.CacheWrap()

	realSigners := h.signers.GetConditions(ctx)
	res := &quorum.DeliverResult{}
	for i, op := range req.proposal.Instructions {
		subres, err := h.deliverOne(ctx, cache, tx, req, op, realSigners)
		if err != nil {
			cache.Discard()
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
		res.Tags = append(res.Tags, subres.Tags...)
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write execution result")
	}
	return res, nil
}

func (h ExecuteProposalHandler) deliverOne(
	ctx quorum.Context,
	db quorum.KVStore,
	tx quorum.Tx,
	req *executeRequest,
	op *SubOperation,
	realSigners []quorum.Condition,
) (*quorum.DeliverResult, error) {
	msg, err := h.decoder.Decode(op.Target, op.Payload)
	if err != nil {
		return nil, err
	}
	if msg.Path() != op.Target {
		return nil, errors.Wrapf(ErrUnknownTarget, "payload decoded as %q, not %q", msg.Path(), op.Target)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sub operation")
	}

	ctx, err = h.scope(ctx, op, req, realSigners)
	if err != nil {
		return nil, err
	}
	return h.router.Deliver(ctx, db, &subOperationTx{Tx: tx, msg: msg})
}

// scope returns a context in which only the signers granted to the sub
// operation are visible. The multisig authority is granted whenever it is
// referenced, regardless of the stored signer flag. Any other signer must
// have signed the execute transaction.
func (h ExecuteProposalHandler) scope(ctx quorum.Context, op *SubOperation, req *executeRequest, realSigners []quorum.Condition) (quorum.Context, error) {
	var (
		granted   []quorum.Condition
		authority bool
	)
	for _, a := range op.Accounts {
		if a.Address.Equals(req.multisig.Authority) {
			authority = true
			continue
		}
		if !a.IsSigner {
			continue
		}
		cond := findCondition(realSigners, a.Address)
		if cond == nil {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "account %s did not sign", a.Address)
		}
		granted = append(granted, cond)
	}

	ctx = h.signers.SetConditions(ctx, granted...)
	if authority {
		return withMultisig(ctx, req.proposal.MultisigID), nil
	}
	return withoutMultisig(ctx), nil
}

func findCondition(conds []quorum.Condition, addr quorum.Address) quorum.Condition {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return c
		}
	}
	return nil
}

// subOperationTx carries a single replayed message. Everything else is
// taken from the execute transaction.
type subOperationTx struct {
	quorum.Tx
	msg quorum.Msg
}

func (tx *subOperationTx) GetMsg() (quorum.Msg, error) {
	return tx.msg, nil
}
