package app

import (
	"reflect"

	"github.com/iov-one/quorum"
)

// Decorators is an ordered stack of decorators. The first one sees a
// transaction first, the handler given to WithHandler sees it last.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//   ).WithHandler(router)
type Decorators struct {
	chain []quorum.Decorator
}

func ChainDecorators(ds ...quorum.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a copy of the stack extended with ds. Nil decorators,
// typed nil pointers included, are skipped.
func (d Decorators) Chain(ds ...quorum.Decorator) Decorators {
	out := make([]quorum.Decorator, len(d.chain), len(d.chain)+len(ds))
	copy(out, d.chain)
	for _, dec := range ds {
		if dec == nil {
			continue
		}
		if v := reflect.ValueOf(dec); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		out = append(out, dec)
	}
	return Decorators{chain: out}
}

// WithHandler closes the stack with h.
func (d Decorators) WithHandler(h quorum.Handler) quorum.Handler {
	return layer{stack: d.chain, last: h}
}

// layer runs stack[0] with the rest of the stack as its next handler.
type layer struct {
	stack []quorum.Decorator
	last  quorum.Handler
}

func (l layer) next() quorum.Handler {
	if len(l.stack) == 1 {
		return l.last
	}
	return layer{stack: l.stack[1:], last: l.last}
}

func (l layer) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if len(l.stack) == 0 {
		return l.last.Check(ctx, db, tx)
	}
	return l.stack[0].Check(ctx, db, tx, l.next())
}

func (l layer) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	if len(l.stack) == 0 {
		return l.last.Deliver(ctx, db, tx)
	}
	return l.stack[0].Deliver(ctx, db, tx, l.next())
}
