package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (quorum.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ quorum.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx returns an unsigned transaction carrying given message.
func NewTx(msg quorum.Msg) (*Tx, error) {
	payload, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize message")
	}
	return &Tx{Route: msg.Path(), Payload: payload}, nil
}

// GetMsg decodes the payload using the message registered for the route.
func (tx *Tx) GetMsg() (quorum.Msg, error) {
	if tx.Route == "" {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "transaction without a route")
	}
	return decode(txMessages, tx.Route, tx.Payload)
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
