package orm

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// ConsumeIterator reads all remaining pairs and releases the iterator.
func ConsumeIterator(it quorum.Iterator) ([]quorum.Model, error) {
	defer it.Release()
	var res []quorum.Model
	for {
		key, value, err := it.Next()
		switch {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		}
		res = append(res, quorum.Model{Key: key, Value: value})
	}
}

func queryKey(db quorum.ReadOnlyKVStore, key []byte) ([]quorum.Model, error) {
	value, err := db.Get(key)
	if err != nil || value == nil {
		return nil, err
	}
	return []quorum.Model{{Key: key, Value: value}}, nil
}

func queryPrefix(db quorum.ReadOnlyKVStore, prefix []byte) ([]quorum.Model, error) {
	start, end := prefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(it)
}

// prefixRange returns the [start, end) range of all keys starting with
// prefix. The end is nil when no key is greater than every such key.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}

// RegisterQuery exposes raw store keys under "/", with support for the
// prefix modifier.
func RegisterQuery(qr quorum.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	switch mod {
	case quorum.KeyQueryMod:
		return queryKey(db, data)
	case quorum.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query modifier %q", mod)
	}
}
