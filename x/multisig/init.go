package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration of this extension and creates all
// multisigs declared in the genesis file.
func (*Initializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, packageName, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var multisigs []struct {
		Owners []struct {
			Address quorum.Address `json:"address"`
			Name    string         `json:"name"`
		} `json:"owners"`
		Threshold     uint32 `json:"threshold"`
		Label         string `json:"label"`
		CoolOffPeriod int64  `json:"cool_off_period"`
	}
	if err := opts.ReadOptions("multisig", &multisigs); err != nil {
		return err
	}

	bucket := NewMultisigBucket()
	for i, g := range multisigs {
		owners := make([]*Owner, 0, len(g.Owners))
		for _, o := range g.Owners {
			owners = append(owners, &Owner{
				Address: o.Address,
				Name:    o.Name,
			})
		}
		m := Multisig{
			Metadata:      &quorum.Metadata{Schema: 1},
			Owners:        owners,
			Threshold:     g.Threshold,
			Label:         g.Label,
			CoolOffPeriod: g.CoolOffPeriod,
			OwnerSetSeqno: 1,
		}
		if _, err := bucket.Create(kv, &m); err != nil {
			return errors.Wrapf(err, "cannot save #%d multisig", i)
		}
	}
	return nil
}
