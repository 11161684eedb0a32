package store

// Journal records writes and replays them on the output store once Write
// is called. Replaying is not atomic, so a journal must only sit in front
// of an in-memory layer or of a store that is committed as a whole.
type Journal struct {
	out SetDeleter
	ops []journalOp
}

type journalOp struct {
	key    []byte
	value  []byte
	delete bool
}

var _ Batch = (*Journal)(nil)

// NewJournal returns an empty journal writing to out.
func NewJournal(out SetDeleter) *Journal {
	return &Journal{out: out}
}

// Set records a write of the value under key.
func (j *Journal) Set(key, value []byte) error {
	j.ops = append(j.ops, journalOp{key: key, value: value})
	return nil
}

// Delete records a removal of key.
func (j *Journal) Delete(key []byte) error {
	j.ops = append(j.ops, journalOp{key: key, delete: true})
	return nil
}

// Write replays all recorded operations in order and empties the journal.
func (j *Journal) Write() error {
	for _, op := range j.ops {
		var err error
		if op.delete {
			err = j.out.Delete(op.key)
		} else {
			err = j.out.Set(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	j.ops = nil
	return nil
}

// Reset drops all recorded operations.
func (j *Journal) Reset() {
	j.ops = nil
}
