package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
)

// genesisDoc is the part of a tendermint genesis file the app reads.
type genesisDoc struct {
	AppState quorum.Options `json:"app_state"`
}

// ValidateGenesis loads the app_state of each file into an empty
// in-memory store and reports the first file that does not load.
func ValidateGenesis(ini quorum.Initializer, paths []string) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrEmpty, "genesis file")
	}
	for _, path := range paths {
		raw, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "read %s: %s", path, err)
		}
		var doc genesisDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "parse %s: %s", path, err)
		}
		if err := ini.FromGenesis(doc.AppState, store.MemStore()); err != nil {
			return errors.Wrapf(err, "load %s", path)
		}
	}
	return nil
}
