package settings

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/gconf"
)

// Initializer fulfils the quorum.Initializer interface. It loads the
// configuration of this extension from the genesis file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis stores the deployer configuration. The registry itself is not
// created at genesis, only the InitSettingsMsg can do that.
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, packageName, &conf)
}
