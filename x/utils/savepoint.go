package utils

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Savepoint runs the rest of the stack on a cache of the store. The
// cache is flushed when the call succeeds and dropped when it fails, so
// a failed transaction leaves no partial writes behind.
//
// A fresh Savepoint does nothing. Enable it per phase with OnCheck and
// OnDeliver.
type Savepoint struct {
	check, deliver bool
}

var _ quorum.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.check = true
	return s
}

// OnDeliver enables the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.deliver = true
	return s
}

func (s Savepoint) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Checker) (res *quorum.CheckResult, err error) {
	err = isolate(s.check, db, func(kv quorum.KVStore) error {
		res, err = next.Check(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (res *quorum.DeliverResult, err error) {
	err = isolate(s.deliver, db, func(kv quorum.KVStore) error {
		res, err = next.Deliver(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn with a cache over db when enabled and db supports
// caching, and with db itself otherwise.
func isolate(enabled bool, db quorum.KVStore, fn func(quorum.KVStore) error) error {
	cacheable, ok := db.(quorum.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "flush savepoint")
}
