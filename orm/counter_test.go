package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum/errors"
)

// Counter is a minimal model used to exercise buckets and indexes.
type Counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

type counterPB Counter

func (m *counterPB) Reset()         { *m = counterPB{} }
func (m *counterPB) String() string { return proto.CompactTextString(m) }
func (*counterPB) ProtoMessage()    {}

func (m *Counter) Marshal() ([]byte, error) { return proto.Marshal((*counterPB)(m)) }

func (m *Counter) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*counterPB)(m)) }

var _ CloneableData = (*Counter)(nil)

// NewCounter returns a counter set to given value.
func NewCounter(count int64) *Counter {
	return &Counter{Count: count}
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidState, "counter must not be negative")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}
