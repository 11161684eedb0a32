package crypto

import (
	"github.com/gogo/protobuf/proto"
)

// PublicKey holds the raw bytes of a public key. Only ed25519 keys are
// supported.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type publicKeyPB PublicKey

func (m *publicKeyPB) Reset()         { *m = publicKeyPB{} }
func (m *publicKeyPB) String() string { return proto.CompactTextString(m) }
func (*publicKeyPB) ProtoMessage()    {}

func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeyPB)(m)) }

func (m *PublicKey) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*publicKeyPB)(m)) }

func (m *PublicKey) String() string { return proto.CompactTextString((*publicKeyPB)(m)) }

func (m *PublicKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

// PrivateKey holds the raw bytes of a private key. Only ed25519 keys are
// supported.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type privateKeyPB PrivateKey

func (m *privateKeyPB) Reset()         { *m = privateKeyPB{} }
func (m *privateKeyPB) String() string { return proto.CompactTextString(m) }
func (*privateKeyPB) ProtoMessage()    {}

func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeyPB)(m)) }

func (m *PrivateKey) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*privateKeyPB)(m)) }

func (m *PrivateKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

// Signature holds the raw bytes of a signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

type signaturePB Signature

func (m *signaturePB) Reset()         { *m = signaturePB{} }
func (m *signaturePB) String() string { return proto.CompactTextString(m) }
func (*signaturePB) ProtoMessage()    {}

func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signaturePB)(m)) }

func (m *Signature) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*signaturePB)(m)) }

func (m *Signature) String() string { return proto.CompactTextString((*signaturePB)(m)) }

func (m *Signature) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}
