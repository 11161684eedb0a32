package store

import (
	"bytes"

	"github.com/google/btree"
)

// entry is a single cached write. A deleted entry hides the value the
// parent store holds for the same key.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// Cache keeps writes in a btree on top of a read only parent. Every write
// is also recorded in the pending batch, so that Write can apply them to
// the parent in one go. Discard drops them.
//
// The multisig executor and the savepoint decorators rely on it to run a
// group of operations atomically.
type Cache struct {
	tree    *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	pending Batch
}

var _ KVCacheWrap = (*Cache)(nil)

// NewCache returns an empty cache over parent. All writes are recorded in
// pending.
func NewCache(parent ReadOnlyKVStore, pending Batch) *Cache {
	return newCache(parent, pending, btree.NewFreeList(btree.DefaultFreeListSize))
}

func newCache(parent ReadOnlyKVStore, pending Batch, free *btree.FreeList) *Cache {
	return &Cache{
		tree:    btree.NewWithFreeList(2, free),
		free:    free,
		parent:  parent,
		pending: pending,
	}
}

// MemStore returns a store that keeps everything in memory. It is the
// database of most tests.
func MemStore() CacheableKVStore {
	return NewCache(nil, nil)
}

// CacheWrap returns a new layer whose writes land in this cache once
// written.
func (c *Cache) CacheWrap() KVCacheWrap {
	return newCache(c, c.NewBatch(), c.free)
}

// NewBatch returns a journal writing to this cache.
func (c *Cache) NewBatch() Batch {
	return NewJournal(c)
}

// Write applies all cached writes to the parent and empties the cache.
func (c *Cache) Write() error {
	var err error
	if c.pending != nil {
		err = c.pending.Write()
	}
	c.Discard()
	return err
}

// Discard drops all cached writes.
func (c *Cache) Discard() {
	for c.tree.DeleteMin() != nil {
	}
	if j, ok := c.pending.(*Journal); ok {
		j.Reset()
	}
}

func (c *Cache) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, value: value})
	if c.pending == nil {
		return nil
	}
	return c.pending.Set(key, value)
}

func (c *Cache) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	if c.pending == nil {
		return nil
	}
	return c.pending.Delete(key)
}

func (c *Cache) Get(key []byte) ([]byte, error) {
	if item := c.tree.Get(entry{key: key}); item != nil {
		if e := item.(entry); !e.deleted {
			return e.value, nil
		}
		return nil, nil
	}
	if c.parent == nil {
		return nil, nil
	}
	return c.parent.Get(key)
}

func (c *Cache) Has(key []byte) (bool, error) {
	if item := c.tree.Get(entry{key: key}); item != nil {
		return !item.(entry).deleted, nil
	}
	if c.parent == nil {
		return false, nil
	}
	return c.parent.Has(key)
}

// Iterator returns the keys of [start, end) in ascending order, merging the
// cached writes with the content of the parent.
func (c *Cache) Iterator(start, end []byte) (Iterator, error) {
	var parent Iterator
	if c.parent != nil {
		it, err := c.parent.Iterator(start, end)
		if err != nil {
			return nil, err
		}
		parent = it
	}
	return &mergeIterator{cached: c.snapshot(start, end), parent: parent}, nil
}

// ReverseIterator is like Iterator, but in descending order.
func (c *Cache) ReverseIterator(start, end []byte) (Iterator, error) {
	var parent Iterator
	if c.parent != nil {
		it, err := c.parent.ReverseIterator(start, end)
		if err != nil {
			return nil, err
		}
		parent = it
	}
	cached := c.snapshot(start, end)
	for i, j := 0, len(cached)-1; i < j; i, j = i+1, j-1 {
		cached[i], cached[j] = cached[j], cached[i]
	}
	return &mergeIterator{cached: cached, parent: parent, descending: true}, nil
}

// snapshot copies the cached entries of [start, end) in ascending order. A
// nil boundary leaves that side of the range open.
func (c *Cache) snapshot(start, end []byte) []entry {
	var entries []entry
	visit := func(item btree.Item) bool {
		entries = append(entries, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		c.tree.Ascend(visit)
	case start == nil:
		c.tree.AscendLessThan(entry{key: end}, visit)
	case end == nil:
		c.tree.AscendGreaterOrEqual(entry{key: start}, visit)
	default:
		c.tree.AscendRange(entry{key: start}, entry{key: end}, visit)
	}
	return entries
}
