package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const pathBumpSequenceMsg = "sigs/bump_sequence"

// maxIncrement bounds a single bump.
const maxIncrement = 1000

var _ quorum.Msg = (*BumpSequenceMsg)(nil)

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}

func (msg *BumpSequenceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Increment == 0 || msg.Increment > maxIncrement {
		errs = errors.Append(errs, errors.Field("Increment", errors.ErrInvalidMsg, "must be between 1 and %d", maxIncrement))
	}
	return errs
}
