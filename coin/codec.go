package coin

import (
	"github.com/gogo/protobuf/proto"
)

// Coin is a fixed point amount of a single currency, with nine decimal
// places.
type Coin struct {
	// Whole units, |whole| <= MaxWhole.
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionths of a unit, with the same sign as Whole.
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3 or 4 upper case letters.
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

type coinPB Coin

func (m *coinPB) Reset()         { *m = coinPB{} }
func (m *coinPB) String() string { return proto.CompactTextString(m) }
func (*coinPB) ProtoMessage()    {}

func (m *Coin) Marshal() ([]byte, error) { return proto.Marshal((*coinPB)(m)) }

func (m *Coin) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*coinPB)(m)) }
