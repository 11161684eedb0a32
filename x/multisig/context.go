package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

// authorityKey holds the id of the multisig whose authority the current
// context carries. A nil id means no authority.
type authorityKey struct{}

// AuthorityCondition is the derived signing identity of a multisig. There
// is no key for it. Only a passed proposal of that multisig, replayed by
// the executor, is granted it.
func AuthorityCondition(id []byte) quorum.Condition {
	return quorum.NewCondition("multisig", "usage", id)
}

func withMultisig(ctx quorum.Context, id []byte) quorum.Context {
	return context.WithValue(ctx, authorityKey{}, id)
}

// withoutMultisig hides an authority granted further up, so that an
// instruction not running under the account cannot use it.
func withoutMultisig(ctx quorum.Context) quorum.Context {
	return context.WithValue(ctx, authorityKey{}, []byte(nil))
}

// Authenticate reports the multisig authority granted by the executor.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx quorum.Context) []quorum.Condition {
	id, _ := ctx.Value(authorityKey{}).([]byte)
	if id == nil {
		return nil
	}
	return []quorum.Condition{AuthorityCondition(id)}
}

func (a Authenticate) HasAddress(ctx quorum.Context, addr quorum.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
