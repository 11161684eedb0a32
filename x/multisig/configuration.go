package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/settings"
)

// packageName is used to store the configuration of this extension.
const packageName = "multisig"

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// chargeFee moves given fee from the payer to the operational fee account
// of the authority registry. A missing or zero fee is free.
func chargeFee(db quorum.KVStore, mover cash.CoinMover, reg *settings.Settings, payer quorum.Address, fee *coin.Coin) error {
	if fee == nil || fee.IsZero() {
		return nil
	}
	if err := mover.MoveCoins(db, payer, reg.OpsFeeAccount, *fee); err != nil {
		return errors.Wrapf(err, "cannot charge %s fee", fee)
	}
	return nil
}
