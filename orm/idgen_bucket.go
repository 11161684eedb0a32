package orm

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// IDGenBucket is a bucket that stores every new object under the next
// value of a sequence.
type IDGenBucket struct {
	Bucket
	ids Sequence
}

// WithSeqIDGenerator returns a bucket whose Create uses the sequence of
// given name.
func WithSeqIDGenerator(b Bucket, seqName string) IDGenBucket {
	return IDGenBucket{Bucket: b, ids: b.Sequence(seqName)}
}

// Create saves data under a new ID.
func (b IDGenBucket) Create(db quorum.KVStore, data CloneableData) (Object, error) {
	id, err := b.ids.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "next id")
	}
	obj := NewSimpleObj(id, data)
	if err := b.Save(db, obj); err != nil {
		return nil, err
	}
	return obj, nil
}
