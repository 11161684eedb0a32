package quorum

import (
	"github.com/gogo/protobuf/proto"
)

// Metadata is present in every stored model. It carries the schema version
// the entity was serialized with.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

type metadataPB Metadata

func (m *metadataPB) Reset()         { *m = metadataPB{} }
func (m *metadataPB) String() string { return proto.CompactTextString(m) }
func (*metadataPB) ProtoMessage()    {}

func (m *Metadata) Marshal() ([]byte, error) { return proto.Marshal((*metadataPB)(m)) }

func (m *Metadata) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*metadataPB)(m)) }

func (m *Metadata) String() string { return proto.CompactTextString((*metadataPB)(m)) }

func (m *Metadata) GetSchema() uint32 {
	if m != nil {
		return m.Schema
	}
	return 0
}
