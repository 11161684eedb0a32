// Package crypto wraps ed25519 keys and signatures in protobuf types and
// maps public keys to signature conditions.
package crypto

import (
	"github.com/iov-one/quorum"
	"golang.org/x/crypto/ed25519"
)

// Signer produces signatures without exposing the key itself, so that a
// hardware wallet can stand in for a PrivateKey.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// GenPrivKeyEd25519 panics when the system has no source of randomness.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	sig := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: sig}, nil
}

func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Verify reports whether sig is a signature of message by this key.
// Malformed keys and signatures never verify.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	key, raw := p.GetEd25519(), sig.GetEd25519()
	if len(key) != ed25519.PublicKeySize || len(raw) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(key, message, raw)
}

// Condition is the permission granted by a signature of this key. It is
// nil for an empty key.
func (p *PublicKey) Condition() quorum.Condition {
	if len(p.GetEd25519()) == 0 {
		return nil
	}
	return quorum.NewCondition("sigs", "ed25519", p.Ed25519)
}

// Address of the key condition, nil for an empty key.
func (p *PublicKey) Address() quorum.Address {
	if c := p.Condition(); c != nil {
		return c.Address()
	}
	return nil
}
