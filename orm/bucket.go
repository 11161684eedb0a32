/*
Package orm stores models in prefixed sections of a key value store, called
buckets.

A bucket holds a single type of model under a primary key. It can keep
secondary indexes, so that all objects sharing an indexed value are found
without scanning the bucket, and sequences that generate ascending primary
keys. Buckets and their indexes can be exposed to ABCI queries.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// SeqID is the name of the sequence generating primary keys.
const SeqID = "id"

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores objects of one type under "<name>:<key>". It is meant to
// be embedded in a type safe wrapper.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes []index
}

var _ quorum.QueryHandler = Bucket{}

// NewBucket returns a bucket of given name. Loaded objects are clones of
// proto. It panics if the name is not 3 to 10 lowercase letters.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		proto:  proto,
	}
}

// WithIndex returns a copy of the bucket that maintains an index of given
// name. Indexes are updated in the order they were declared. It panics if
// the name is already taken.
func (b Bucket) WithIndex(name string, indexer Indexer) Bucket {
	for _, idx := range b.indexes {
		if idx.name == name {
			panic(fmt.Sprintf("index %q declared twice", name))
		}
	}
	indexes := make([]index, len(b.indexes), len(b.indexes)+1)
	copy(indexes, b.indexes)
	b.indexes = append(indexes, newIndex(b.name, name, indexer, b.DBKey))
	return b
}

// Sequence returns the sequence of given name, scoped to this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// DBKey returns the store key of an object. It always allocates.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Get returns the object stored under key, or nil if there is none.
func (b Bucket) Get(db quorum.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidState, "unmarshal %s %X: %s", b.name, key, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates and writes the object, updating all indexes.
func (b Bucket) Save(db quorum.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s", b.name)
	}
	if err := b.reindex(db, obj.Key(), obj); err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

// Delete removes the object stored under key, together with its index
// entries.
func (b Bucket) Delete(db quorum.KVStore, key []byte) error {
	if err := b.reindex(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

// reindex moves the index entries of key from the stored object to next.
// A nil next removes them.
func (b Bucket) reindex(db quorum.KVStore, key []byte, next Object) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil {
		return err
	}
	for _, idx := range b.indexes {
		if err := idx.update(db, key, prev, next); err != nil {
			return errors.Wrapf(err, "index %s", idx.name)
		}
	}
	return nil
}

// GetIndexed returns all objects indexed under value by the named index, in
// ascending primary key order.
func (b Bucket) GetIndexed(db quorum.ReadOnlyKVStore, name string, value []byte) ([]Object, error) {
	for _, idx := range b.indexes {
		if idx.name != name {
			continue
		}
		refs, err := idx.refs(db, value)
		if err != nil {
			return nil, err
		}
		objs := make([]Object, 0, len(refs))
		for _, ref := range refs {
			obj, err := b.Get(db, ref)
			if err != nil {
				return nil, err
			}
			if obj == nil {
				return nil, errors.Wrapf(errors.ErrInvalidState, "index %s points to missing %X", name, ref)
			}
			objs = append(objs, obj)
		}
		return objs, nil
	}
	return nil, errors.Wrap(ErrInvalidIndex, name)
}

// Register exposes the bucket under "/<name>" and every index under
// "/<name>/<index>".
func (b Bucket) Register(name string, r quorum.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
	for _, idx := range b.indexes {
		r.Register("/"+name+"/"+idx.name, idx)
	}
}

// Query returns the object stored under the given key, or all objects
// whose key starts with it when the prefix modifier is used.
func (b Bucket) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	switch mod {
	case quorum.KeyQueryMod:
		return queryKey(db, b.DBKey(data))
	case quorum.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query modifier %q", mod)
	}
}
