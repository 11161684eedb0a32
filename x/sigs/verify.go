package sigs

import (
	"crypto/sha512"
	"encoding/binary"
	"io"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// signPrefix tags the version of the signed layout.
var signPrefix = []byte{0, 0xCA, 0xFE, 0}

// SignedTx is a transaction carrying signatures over its sign bytes.
type SignedTx interface {
	// GetSignBytes returns the bytes every signer signs, usually the
	// serialized message.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// digest returns the sha512 hash that is signed for payload:
//
//   prefix | len(chainID) uint8 | chainID | seq int64 big endian | payload
//
// Binding the chain ID and the nonce prevents replay on another chain or
// of an older transaction.
func digest(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !quorum.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id %q", chainID)
	}
	h := sha512.New()
	h.Write(signPrefix)
	h.Write([]byte{byte(len(chainID))})
	io.WriteString(h, chainID)
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	h.Write(nonce[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// SignTx signs tx for given chain with the nonce seq.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	d, err := digest(payload, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(d)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: sig, Sequence: seq}, nil
}

// Validate requires a key, a signature and a non negative nonce.
func (s *StdSignature) Validate() error {
	switch {
	case s.GetPubkey() == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	case s.GetSignature() == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	case s.GetSequence() < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	return nil
}

// checkSignatures verifies every signature of tx and advances the nonce of
// each signer. Signer conditions are returned in signature order.
func checkSignatures(db quorum.KVStore, tx SignedTx, chainID string) ([]quorum.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	accounts := NewBucket()
	sigs := tx.GetSignatures()
	signers := make([]quorum.Condition, 0, len(sigs))
	for i, sig := range sigs {
		if err := sig.Validate(); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		d, err := digest(payload, chainID, sig.Sequence)
		if err != nil {
			return nil, err
		}
		if !sig.Pubkey.Verify(d, sig.Signature) {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "signature %d does not verify", i)
		}

		user, err := accounts.Load(db, sig.Pubkey.Address())
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &UserData{Metadata: &quorum.Metadata{Schema: 1}}
		}
		if user.Pubkey == nil {
			user.Pubkey = sig.Pubkey
		}
		if err := user.advance(sig.Sequence); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		if err := accounts.Save(db, user); err != nil {
			return nil, err
		}
		signers = append(signers, sig.Pubkey.Condition())
	}
	return signers, nil
}
