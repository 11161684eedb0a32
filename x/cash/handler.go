package cash

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// RegisterRoutes adds the cash/send route.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
}

// RegisterQuery exposes balances under "/wallets".
func RegisterQuery(qr quorum.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler moves coins between two wallets. The source must have
// authorized the tx, which for a multisig account means a passed
// proposal is being executed.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ quorum.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

// Check does not look at balances. An underfunded send fails on
// delivery.
func (h SendHandler) Check(ctx quorum.Context, _ quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.authorized(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: sendTxCost}, nil
}

func (h SendHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, err := h.authorized(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{}, nil
}

func (h SendHandler) authorized(ctx quorum.Context, tx quorum.Tx) (*SendMsg, error) {
	msg := new(SendMsg)
	if err := quorum.LoadMsg(tx, msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "source %s did not sign", msg.Source)
	}
	return msg, nil
}
