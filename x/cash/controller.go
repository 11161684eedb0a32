package cash

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins is a safe and reliable way to transfer coins between
	// two accounts. Returns error if src does not have enough coins.
	MoveCoins(db quorum.KVStore, src, dest quorum.Address, amount coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and
// cash.Decorator. BaseController should work plenty fine, but you can add
// other logic if so desired.
type Controller interface {
	CoinMover
	// IssueCoins increases the number of coins of a given currency in the
	// system. Amount can be negative to burn coins.
	IssueCoins(db quorum.KVStore, dest quorum.Address, amount coin.Coin) error
	// Balance returns the amount of funds stored under given account
	// address.
	Balance(db quorum.ReadOnlyKVStore, addr quorum.Address) (coin.Coins, error)
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AsSet
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins of the wallet stored under given address.
// ErrNotFound is returned if the wallet does not exist.
func (c BaseController) Balance(db quorum.ReadOnlyKVStore, addr quorum.Address) (coin.Coins, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account state")
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no wallet")
	}
	return AsCoins(obj), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db quorum.KVStore, src, dest quorum.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive amount: %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}

	if !AsSet(sender).Contains(amount) {
		return errors.Wrap(errors.ErrInsufficientAmount, "funds")
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}

	if err := AsSet(sender).Subtract(amount); err != nil {
		return errors.Wrap(err, "cannot subtract")
	}
	// A transfer to self must operate on a single wallet instance.
	if src.Equals(dest) {
		recipient = sender
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return errors.Wrap(err, "cannot add")
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := c.bucket.Save(db, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db quorum.KVStore, dest quorum.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// MoveCoins moves every given coin from src to dest using the provided mover.
func MoveCoins(db quorum.KVStore, bank CoinMover, src, dest quorum.Address, amounts []*coin.Coin) error {
	for _, c := range amounts {
		if err := bank.MoveCoins(db, src, dest, *c); err != nil {
			return errors.Wrapf(err, "failed to move %q", c.String())
		}
	}
	return nil
}
