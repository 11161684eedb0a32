package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum/x/sigs"
)

// Tx contains the message.
//
// A transaction carries a single message, identified by its route. The
// payload is the message serialized with its own protobuf definition.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures" json:"signatures,omitempty"`
	// Route is the path of the message, for example "multisig/create_proposal".
	Route   string `protobuf:"bytes,2,opt,name=route,proto3" json:"route,omitempty"`
	Payload []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

type txPB Tx

func (m *txPB) Reset()         { *m = txPB{} }
func (m *txPB) String() string { return proto.CompactTextString(m) }
func (*txPB) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txPB)(m)) }

func (m *Tx) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*txPB)(m)) }

func (m *Tx) String() string { return proto.CompactTextString((*txPB)(m)) }

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}
