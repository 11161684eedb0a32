package app

import (
	"github.com/gogo/protobuf/proto"
)

// ResultSet contains a list of keys or values
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results" json:"results,omitempty"`
}

type resultSetPB ResultSet

func (m *resultSetPB) Reset()         { *m = resultSetPB{} }
func (m *resultSetPB) String() string { return proto.CompactTextString(m) }
func (*resultSetPB) ProtoMessage()    {}

func (m *ResultSet) Marshal() ([]byte, error) { return proto.Marshal((*resultSetPB)(m)) }

func (m *ResultSet) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*resultSetPB)(m)) }

func (m *ResultSet) GetResults() [][]byte {
	if m != nil {
		return m.Results
	}
	return nil
}
