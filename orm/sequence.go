package orm

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Sequence is a counter kept in the store under "_s.<bucket>:<name>". Its
// values are 8 byte big endian numbers, so they sort the same way as
// bytes as they do as integers.
type Sequence struct {
	key []byte
}

func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextVal increments the counter and returns its new value. The first
// value is 1.
func (s Sequence) NextVal(db quorum.KVStore) ([]byte, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return nil, err
	}
	var n uint64
	switch len(raw) {
	case 0:
	case 8:
		n = binary.BigEndian.Uint64(raw)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidState, "sequence %q of %d bytes", s.key, len(raw))
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, n+1)
	if err := db.Set(s.key, next); err != nil {
		return nil, err
	}
	return next, nil
}
