package cash

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.CloneableData = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return coin.Coins(s.GetCoins()).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    coin.Coins(s.GetCoins()).Clone(),
	}
}

// Contains returns true if there is at least that much
// coin in the Set.
func (s *Set) Contains(c coin.Coin) bool {
	return coin.Coins(s.GetCoins()).Contains(c)
}

// IsEmpty returns true if the set holds no coins.
func (s *Set) IsEmpty() bool {
	return coin.Coins(s.GetCoins()).IsEmpty()
}

// Add modifies the set to add Coin c
func (s *Set) Add(c coin.Coin) error {
	cs, err := coin.Coins(s.GetCoins()).Add(c)
	if err != nil {
		return err
	}
	s.Coins = cs
	return nil
}

// Subtract modifies the set to remove Coin c
func (s *Set) Subtract(c coin.Coin) error {
	return s.Add(c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func (s *Set) Concat(coins coin.Coins) error {
	joint, err := coin.Coins(s.GetCoins()).Combine(coins)
	if err != nil {
		return err
	}
	s.Coins = joint
	return nil
}

// AsSet will safely type-cast any value from Bucket to a Set
func AsSet(obj orm.Object) *Set {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Set)
}

// AsCoins will extract Coins from any object
func AsCoins(obj orm.Object) coin.Coins {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return coin.Coins(AsSet(obj).GetCoins())
}

// NewWallet creates an empty wallet with this address
// serves as an object for the bucket
func NewWallet(key quorum.Address) orm.Object {
	return orm.NewSimpleObj(key, &Set{
		Metadata: &quorum.Metadata{Schema: 1},
	})
}

// WalletWith creates an wallet with a balance
func WalletWith(key quorum.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	if err := AsSet(obj).Concat(coins); err != nil {
		return nil, err
	}
	return obj, nil
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
//
// inherit Get and Save from orm.Bucket
// add GetOrCreate
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate will return the object if found, or create one
// if not.
func (b Bucket) GetOrCreate(db quorum.KVStore, key quorum.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}

// Save enforces the proper type
func (b Bucket) Save(db quorum.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Set); !ok {
		return errors.Wrapf(errors.ErrInvalidModel, "invalid type: %T", obj.Value())
	}
	return b.Bucket.Save(db, obj)
}
