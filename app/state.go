package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// chainIDKey lives in the "_a:" key space reserved for the application.
var chainIDKey = []byte("_a:chain_id")

// state layers two caches over the committed store. The deliver cache
// collects the writes of the block in progress. The check cache validates
// mempool candidates and is thrown away on every commit.
type state struct {
	db      quorum.CommitKVStore
	deliver quorum.KVCacheWrap
	check   quorum.KVCacheWrap
}

func openState(db quorum.CommitKVStore) (*state, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	s := &state{db: db}
	s.reset()
	return s, nil
}

func (s *state) reset() {
	s.deliver = s.db.CacheWrap()
	s.check = s.db.CacheWrap()
}

func (s *state) commit() (quorum.CommitID, error) {
	if err := s.deliver.Write(); err != nil {
		return quorum.CommitID{}, errors.Wrap(err, "flush block")
	}
	s.check.Discard()
	id, err := s.db.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	s.reset()
	return id, nil
}

func loadChainID(db quorum.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id once. Genesis cannot be replayed on top
// of an initialized store.
func saveChainID(db quorum.KVStore, chainID string) error {
	if !quorum.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInvalidInput, "chain id %q", chainID)
	}
	switch prev, err := loadChainID(db); {
	case err != nil:
		return err
	case prev != "":
		return errors.Wrapf(errors.ErrUnauthorized, "chain %q already initialized", prev)
	}
	return errors.Wrap(db.Set(chainIDKey, []byte(chainID)), "save chain id")
}
