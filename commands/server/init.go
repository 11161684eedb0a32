// Package server implements the init, start and validate subcommands of
// an ABCI application binary.
package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	dirConfig   = "config"
	fileGenesis = "genesis.json"
)

// GenOptions builds the app_state section from the init arguments.
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc keeps every section of the genesis file as raw JSON, so that
// the tendermint sections survive a rewrite untouched.
type GenesisDoc map[string]json.RawMessage

// InitCmd fills the app_state of the genesis file written by
// "tendermint init". A file whose app_state is already set is left
// alone and ErrDuplicate is returned.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	path := filepath.Join(home, dirConfig, fileGenesis)
	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrapf(errors.ErrNotFound, "%s, run tendermint init first", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "%s: %s", path, err)
	}
	if !emptyJSON(doc[appStateKey]) {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set")
	}

	state, err := gen(args)
	if err != nil {
		return err
	}
	doc[appStateKey] = state
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := ioutil.WriteFile(path, out, 0600); err != nil {
		return err
	}
	logger.Info("app state written", "path", path)
	return nil
}

func emptyJSON(v json.RawMessage) bool {
	switch string(v) {
	case "", "null", "{}":
		return true
	}
	return false
}
