package x

import (
	"github.com/iov-one/quorum"
)

// Validater is anything that can check its own consistency.
type Validater interface {
	Validate() error
}

// Authenticator tells which conditions authorized the current
// transaction. Handlers receive one instead of reading the context, so
// that authentication sources can be combined.
type Authenticator interface {
	GetConditions(quorum.Context) []quorum.Condition
	HasAddress(quorum.Context, quorum.Address) bool
}

// ChainAuth combines authenticators. Conditions are listed in the order of
// the authenticators.
func ChainAuth(auths ...Authenticator) Authenticator {
	return chainAuth(auths)
}

type chainAuth []Authenticator

func (c chainAuth) GetConditions(ctx quorum.Context) []quorum.Condition {
	var conds []quorum.Condition
	for _, a := range c {
		conds = append(conds, a.GetConditions(ctx)...)
	}
	return conds
}

func (c chainAuth) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, a := range c {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition of the transaction, or nil.
func MainSigner(ctx quorum.Context, auth Authenticator) quorum.Condition {
	if conds := auth.GetConditions(ctx); len(conds) != 0 {
		return conds[0]
	}
	return nil
}
