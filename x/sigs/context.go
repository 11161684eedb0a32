package sigs

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

type ctxKey struct{}

// WithSigners returns a context in which signers are the verified signers
// of the transaction. Outside of the decorator it is only called to replay
// messages on behalf of already verified signers.
func WithSigners(ctx quorum.Context, signers []quorum.Condition) quorum.Context {
	return context.WithValue(ctx, ctxKey{}, signers)
}

// Authenticate reads the signers set by the decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx quorum.Context) []quorum.Condition {
	signers, _ := ctx.Value(ctxKey{}).([]quorum.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}

// SetConditions replaces the signers of the current transaction.
func (Authenticate) SetConditions(ctx quorum.Context, signers ...quorum.Condition) quorum.Context {
	return WithSigners(ctx, signers)
}
