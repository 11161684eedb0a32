package iavl

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// cacheSize is the number of tree nodes kept in memory.
	cacheSize = 10000
	// keepVersions is how many committed versions are kept before the
	// oldest one is pruned.
	keepVersions int64 = 20
)

// CommitStore is the application state. It is a versioned merkle tree,
// saved with every committed block.
type CommitStore struct {
	tree *iavl.MutableTree
	keep int64
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens, or creates, a leveldb database called name in the
// dir directory.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open leveldb %q in %q: %s", name, dir, err)
	}
	return open(db), nil
}

// MockCommitStore returns a store that does not persist anything.
func MockCommitStore() *CommitStore {
	return open(dbm.NewMemDB())
}

func open(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, cacheSize),
		keep: keepVersions,
	}
}

// Get reads the last committed value of given key. Uncommitted writes are
// not visible.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.GetVersioned(key, s.tree.Version())
	return value, nil
}

// Commit saves the working tree as a new version and prunes the versions
// that fell out of the kept history.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "save version: %s", err)
	}
	if old := version - s.keep; s.keep > 0 && old > 0 {
		if err := s.tree.DeleteVersion(old); err != nil {
			return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "prune version %d: %s", old, err)
		}
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion reads the most recent version from the database.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load tree: %s", err)
	}
	return nil
}

// LatestVersion returns the version and the root hash of the last commit.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{Version: s.tree.Version(), Hash: s.tree.Hash()}, nil
}

// CacheWrap returns a cache over the working tree. Writing the cache
// modifies the working tree, which is persisted by the next Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return working{tree: s.tree}.CacheWrap()
}

// working exposes the uncommitted tree as a key value store.
type working struct {
	tree *iavl.MutableTree
}

var _ store.CacheableKVStore = working{}

func (w working) Get(key []byte) ([]byte, error) {
	_, value := w.tree.Get(key)
	return value, nil
}

func (w working) Has(key []byte) (bool, error) {
	return w.tree.Has(key), nil
}

func (w working) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

func (w working) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}

func (w working) NewBatch() store.Batch {
	return store.NewJournal(w)
}

func (w working) CacheWrap() store.KVCacheWrap {
	return store.NewCache(w, w.NewBatch())
}

func (w working) Iterator(start, end []byte) (store.Iterator, error) {
	return w.load(start, end, true), nil
}

func (w working) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return w.load(start, end, false), nil
}

// load reads the whole range before returning, so that writing to the tree
// while iterating is safe.
func (w working) load(start, end []byte, ascending bool) store.Iterator {
	var pairs []store.Model
	w.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		pairs = append(pairs, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(pairs)
}
