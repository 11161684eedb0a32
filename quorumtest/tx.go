package quorumtest

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
)

// Tx carries Msg. Err, when set, is returned instead of the message. A Tx
// is never serialized.
type Tx struct {
	Msg quorum.Msg
	Err error
}

func (tx *Tx) GetMsg() (quorum.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("test transaction cannot be marshaled")
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("test transaction cannot be unmarshaled")
}

// Msg is routed to RoutePath and serializes to Serialized. Err is returned
// by its validation and serialization when set.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}

// SequenceID returns the n-th key generated by an orm sequence.
func SequenceID(n uint64) []byte {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, n)
	return id
}
