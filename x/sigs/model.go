package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// BucketName is where signer accounts are stored.
const BucketName = "sigs"

// maxSequence is the greatest nonce a javascript client can represent,
// Number.MAX_SAFE_INTEGER.
const maxSequence = 1<<53 - 1

var _ orm.CloneableData = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", u.Metadata.Validate())
	switch {
	case u.Sequence < 0 || u.Sequence > maxSequence:
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	case u.Sequence > 0 && u.Pubkey == nil:
		errs = errors.Append(errs, errors.Field("Pubkey", errors.ErrEmpty, "required once a nonce was used"))
	}
	return errs
}

func (u *UserData) Copy() orm.CloneableData {
	return &UserData{
		Metadata: u.Metadata.Copy(),
		Pubkey:   u.Pubkey,
		Sequence: u.Sequence,
	}
}

// advance consumes the nonce seq, which must be the current one.
func (u *UserData) advance(seq int64) error {
	if seq != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "got %d, want %d", seq, u.Sequence)
	}
	return u.bump(1)
}

func (u *UserData) bump(n int64) error {
	if u.Sequence > maxSequence-n {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	u.Sequence += n
	return nil
}

// Bucket stores the nonce of every key that ever signed, under the key
// address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &UserData{})),
	}
}

// Load returns the account of given address, or nil if that address never
// signed a transaction.
func (b Bucket) Load(db quorum.ReadOnlyKVStore, addr quorum.Address) (*UserData, error) {
	obj, err := b.Get(db, addr)
	if err != nil || obj == nil {
		return nil, err
	}
	u, ok := obj.Value().(*UserData)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
	}
	return u, nil
}

// Save writes the account under the address of its public key.
func (b Bucket) Save(db quorum.KVStore, u *UserData) error {
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(u.Pubkey.Address(), u))
}

// RegisterQuery exposes signer accounts under "/auth".
func RegisterQuery(qr quorum.QueryRouter) {
	NewBucket().Register("auth", qr)
}
