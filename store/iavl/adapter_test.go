package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCommitStorePersists(t *testing.T) {
	dir, err := ioutil.TempDir("", "quorum-iavl-")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	db, err := NewCommitStore(dir, "state")
	assert.Nil(t, err)
	assert.Nil(t, db.LoadLatestVersion())

	deliver := db.CacheWrap()
	assert.Nil(t, deliver.Set([]byte("multisig:1"), []byte("2 of 3")))
	// Nothing is visible before the block is written and committed.
	got, err := db.Get([]byte("multisig:1"))
	assert.Nil(t, err)
	assert.Nil(t, got)
	assert.Nil(t, deliver.Write())

	first, err := db.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), first.Version)
	got, err = db.Get([]byte("multisig:1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2 of 3"), got)

	deliver = db.CacheWrap()
	assert.Nil(t, deliver.Delete([]byte("multisig:1")))
	assert.Nil(t, deliver.Write())
	second, err := db.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), second.Version)
	if string(first.Hash) == string(second.Hash) {
		t.Fatal("state change must change the app hash")
	}

	reopened, err := NewCommitStore(dir, "state")
	assert.Nil(t, err)
	assert.Nil(t, reopened.LoadLatestVersion())
	latest, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, second, latest)
	got, err = reopened.Get([]byte("multisig:1"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestWorkingTreeIterator(t *testing.T) {
	db := MockCommitStore()
	cache := db.CacheWrap()
	for _, k := range []string{"vote:1", "vote:2", "vote:3"} {
		assert.Nil(t, cache.Set([]byte(k), []byte("yes")))
	}
	assert.Nil(t, cache.Write())

	cache = db.CacheWrap()
	assert.Nil(t, cache.Delete([]byte("vote:2")))
	it, err := cache.ReverseIterator([]byte("vote:"), nil)
	assert.Nil(t, err)
	defer it.Release()

	var keys []string
	for {
		key, _, err := it.Next()
		if err != nil {
			break
		}
		keys = append(keys, string(key))
	}
	assert.Equal(t, []string{"vote:3", "vote:1"}, keys)
}
