package settings

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// registryKey is the only key under which the registry is ever stored.
var registryKey = []byte("registry")

var _ orm.Model = (*Settings)(nil)

// Validate ensures the registry is in a valid state.
func (s *Settings) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if !s.Initialized {
		errs = errors.Append(errs, errors.Field("Initialized", errors.ErrInvalidState, "must be set"))
	}
	errs = errors.AppendField(errs, "OpsFeeAccount", s.OpsFeeAccount.Validate())
	errs = errors.AppendField(errs, "Admin", s.Admin.Validate())
	errs = errors.AppendField(errs, "MultisigCreationFee", validateFee(s.MultisigCreationFee))
	errs = errors.AppendField(errs, "ProposalCreationFee", validateFee(s.ProposalCreationFee))
	return errs
}

// validateFee accepts a missing fee. A declared fee must be a valid,
// non negative amount.
func validateFee(fee *coin.Coin) error {
	if fee == nil {
		return nil
	}
	if err := fee.Validate(); err != nil {
		return err
	}
	if !fee.IsNonNegative() {
		return errors.Wrap(errors.ErrInvalidAmount, "negative fee")
	}
	return nil
}

// Copy returns a deep copy of the registry.
func (s *Settings) Copy() orm.CloneableData {
	return &Settings{
		Metadata:            s.Metadata.Copy(),
		Initialized:         s.Initialized,
		OpsFeeAccount:       s.OpsFeeAccount.Clone(),
		Admin:               s.Admin.Clone(),
		MultisigCreationFee: s.MultisigCreationFee.Clone(),
		ProposalCreationFee: s.ProposalCreationFee.Clone(),
	}
}

// Bucket stores the authority registry singleton.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns a bucket for the authority registry.
func NewBucket() *Bucket {
	return &Bucket{
		Bucket: orm.NewBucket("settings", orm.NewSimpleObj(nil, &Settings{})),
	}
}

// Load returns the authority registry. ErrNotFound is returned when the
// registry was not initialized yet.
func (b *Bucket) Load(db quorum.ReadOnlyKVStore) (*Settings, error) {
	obj, err := b.Get(db, registryKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load authority registry")
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "authority registry not initialized")
	}
	s, ok := obj.Value().(*Settings)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
	}
	return s, nil
}

// Exists returns true if the registry was already initialized.
func (b *Bucket) Exists(db quorum.ReadOnlyKVStore) (bool, error) {
	obj, err := b.Get(db, registryKey)
	return obj != nil, err
}

// Save writes the registry under its singleton key.
func (b *Bucket) Save(db quorum.KVStore, s *Settings) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(registryKey, s))
}

// Load is a shortcut that reads the authority registry from given store.
func Load(db quorum.ReadOnlyKVStore) (*Settings, error) {
	return NewBucket().Load(db)
}
