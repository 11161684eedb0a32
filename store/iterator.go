package store

import (
	"bytes"

	"github.com/iov-one/quorum/errors"
)

// mergeIterator walks the cached entries and the parent iterator side by
// side. A cached entry wins over a parent pair with the same key.
type mergeIterator struct {
	cached     []entry
	descending bool

	parent Iterator
	// head is the parent pair read ahead and not returned yet.
	head    Model
	hasHead bool
}

var _ Iterator = (*mergeIterator)(nil)

func (m *mergeIterator) Next() ([]byte, []byte, error) {
	for {
		if err := m.readHead(); err != nil {
			return nil, nil, err
		}
		if len(m.cached) == 0 {
			if !m.hasHead {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache")
			}
			return m.takeHead()
		}

		e := m.cached[0]
		if m.hasHead {
			switch m.compare(e.key, m.head.Key) {
			case 1:
				return m.takeHead()
			case 0:
				m.hasHead = false
			}
		}
		m.cached = m.cached[1:]
		if e.deleted {
			continue
		}
		return e.key, e.value, nil
	}
}

// compare orders two keys in the direction of the iteration.
func (m *mergeIterator) compare(a, b []byte) int {
	if m.descending {
		return bytes.Compare(b, a)
	}
	return bytes.Compare(a, b)
}

func (m *mergeIterator) readHead() error {
	if m.hasHead || m.parent == nil {
		return nil
	}
	key, value, err := m.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		m.parent.Release()
		m.parent = nil
		return nil
	case err != nil:
		return err
	}
	m.head = Model{Key: key, Value: value}
	m.hasHead = true
	return nil
}

func (m *mergeIterator) takeHead() ([]byte, []byte, error) {
	m.hasHead = false
	return m.head.Key, m.head.Value, nil
}

func (m *mergeIterator) Release() {
	if m.parent != nil {
		m.parent.Release()
		m.parent = nil
	}
	m.cached = nil
}

// NewSliceIterator returns an iterator over an already loaded list of
// pairs.
func NewSliceIterator(models []Model) Iterator {
	return &sliceIterator{models: models}
}

type sliceIterator struct {
	models []Model
}

func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if len(s.models) == 0 {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice")
	}
	m := s.models[0]
	s.models = s.models[1:]
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.models = nil
}
