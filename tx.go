package quorum

import (
	"reflect"

	"github.com/iov-one/quorum/errors"
)

// Msg is a single requested state transition. It carries no
// authentication data, that lives on the wrapping Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler, for example
	// "multisig/create". Several types may share one path.
	Path() string

	// Validate checks everything that can be checked without reading
	// state.
	Validate() error
}

// Marshaller serializes a value to its wire form.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent can be written to and restored from the store. Unmarshal
// needs a pointer receiver, so the two halves are split.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is the envelope submitted by a client: one message plus whatever
// the decorators need, such as signatures.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// GetPath is used for logging. A tx without a usable message
// reports "(missing)".
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder turns raw transaction bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg copies the tx message into destination, which must be a
// pointer to the concrete message type or a pointer to such a pointer.
// The message is validated before LoadMsg returns.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrInvalidMsg, "transaction without a message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrHuman, "destination must be a pointer")
	}

	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr && dest.Elem().Kind() != reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrInvalidType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
