package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
)

// UserData is the account of a signer, stored under the address of its key.
type UserData struct {
	Metadata *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey" json:"pubkey,omitempty"`
	Sequence int64            `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

type userDataPB UserData

func (m *userDataPB) Reset()         { *m = userDataPB{} }
func (m *userDataPB) String() string { return proto.CompactTextString(m) }
func (*userDataPB) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDataPB)(m)) }

func (m *UserData) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*userDataPB)(m)) }

func (m *UserData) GetPubkey() *crypto.PublicKey {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *UserData) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

// StdSignature is a signature together with the key that made it and the
// nonce it was made for. Nonces of a signer start at zero.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature" json:"signature,omitempty"`
}

type stdSignaturePB StdSignature

func (m *stdSignaturePB) Reset()         { *m = stdSignaturePB{} }
func (m *stdSignaturePB) String() string { return proto.CompactTextString(m) }
func (*stdSignaturePB) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignaturePB)(m)) }

func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignaturePB)(m))
}

func (m *StdSignature) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *StdSignature) GetPubkey() *crypto.PublicKey {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *StdSignature) GetSignature() *crypto.Signature {
	if m != nil {
		return m.Signature
	}
	return nil
}

// BumpSequenceMsg increments the sequence of the main signer by the
// requested value.
type BumpSequenceMsg struct {
	Metadata *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	// Increment is the total value the sequence is incremented by,
	// including the increment applied by the signature verification.
	Increment uint32 `protobuf:"varint,2,opt,name=increment,proto3" json:"increment,omitempty"`
}

type bumpSequenceMsgPB BumpSequenceMsg

func (m *bumpSequenceMsgPB) Reset()         { *m = bumpSequenceMsgPB{} }
func (m *bumpSequenceMsgPB) String() string { return proto.CompactTextString(m) }
func (*bumpSequenceMsgPB) ProtoMessage()    {}

func (m *BumpSequenceMsg) Marshal() ([]byte, error) { return proto.Marshal((*bumpSequenceMsgPB)(m)) }

func (m *BumpSequenceMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*bumpSequenceMsgPB)(m))
}
