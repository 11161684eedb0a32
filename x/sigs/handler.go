package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// RegisterRoutes registers the sequence bump handler.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator) {
	r.Handle(pathBumpSequenceMsg, bumpSequenceHandler{auth: auth, accounts: NewBucket()})
}

// bumpSequenceHandler advances the nonce of the main signer, which
// invalidates every transaction already signed with the skipped values.
type bumpSequenceHandler struct {
	auth     x.Authenticator
	accounts Bucket
}

func (h bumpSequenceHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.load(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h bumpSequenceHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	user, msg, err := h.load(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Verifying the signature of this transaction used one increment.
	if extra := int64(msg.Increment) - 1; extra > 0 {
		if err := user.bump(extra); err != nil {
			return nil, err
		}
		if err := h.accounts.Save(db, user); err != nil {
			return nil, errors.Wrap(err, "save account")
		}
	}
	return &quorum.DeliverResult{}, nil
}

func (h bumpSequenceHandler) load(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	user, err := h.accounts.Load(db, signer.Address())
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "account %s", signer.Address())
	}
	if user.Sequence > maxSequence-int64(msg.Increment) {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "sequence")
	}
	return user, &msg, nil
}
