package orm

import (
	"bytes"
	"math"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Indexer returns the value an object is indexed under. A nil value
// leaves the object out of the index.
type Indexer func(Object) ([]byte, error)

// index keeps one store entry per indexed object. The entry key is the
// index value, prefixed with its length, followed by the primary key, so
// that all objects sharing a value sit next to each other. The entry value
// is the primary key.
type index struct {
	name    string
	prefix  []byte
	indexer Indexer
	refKey  func([]byte) []byte
}

var _ quorum.QueryHandler = index{}

func newIndex(bucket, name string, indexer Indexer, refKey func([]byte) []byte) index {
	return index{
		name:    name,
		prefix:  []byte("_i." + bucket + "_" + name + ":"),
		indexer: indexer,
		refKey:  refKey,
	}
}

func (i index) valuePrefix(value []byte) []byte {
	key := make([]byte, 0, len(i.prefix)+2+len(value))
	key = append(key, i.prefix...)
	key = append(key, byte(len(value)>>8), byte(len(value)))
	return append(key, value...)
}

func (i index) valueOf(obj Object) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	value, err := i.indexer(obj)
	if err != nil {
		return nil, err
	}
	if len(value) > math.MaxUint16 {
		return nil, errors.Wrapf(ErrInvalidIndex, "value of %d bytes", len(value))
	}
	return value, nil
}

// update moves the entry of pk from the value of prev to the value of next.
// A nil prev is an insert, a nil next a delete.
func (i index) update(db quorum.KVStore, pk []byte, prev, next Object) error {
	old, err := i.valueOf(prev)
	if err != nil {
		return err
	}
	now, err := i.valueOf(next)
	if err != nil {
		return err
	}
	if prev != nil && next != nil && bytes.Equal(old, now) {
		return nil
	}
	if len(old) != 0 {
		if err := db.Delete(append(i.valuePrefix(old), pk...)); err != nil {
			return err
		}
	}
	if len(now) != 0 {
		return db.Set(append(i.valuePrefix(now), pk...), pk)
	}
	return nil
}

// refs returns the primary keys indexed under value in ascending order.
func (i index) refs(db quorum.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	entries, err := queryPrefix(db, i.valuePrefix(value))
	if err != nil {
		return nil, err
	}
	refs := make([][]byte, len(entries))
	for n, e := range entries {
		refs[n] = e.Value
	}
	return refs, nil
}

// Query returns the stored objects indexed under given value. Only exact
// lookups are supported.
func (i index) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	if mod != quorum.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "index %s supports key queries only", i.name)
	}
	refs, err := i.refs(db, data)
	if err != nil {
		return nil, err
	}
	var res []quorum.Model
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, quorum.Model{Key: key, Value: value})
	}
	return res, nil
}
