package multisig

import (
	"github.com/iov-one/quorum/errors"
)

// multisig takes 1100-1111
var (
	ErrInvalidThreshold    = errors.Register(1100, "invalid threshold")
	ErrDuplicateOwner      = errors.Register(1101, "duplicate owner")
	ErrExpiryBeforeCoolOff = errors.Register(1102, "Expiry date comes before cool off period")
	ErrNotAnOwner          = errors.Register(1103, "not an owner")
	ErrAlreadyVoted        = errors.Register(1104, "already voted")
	ErrProposalNotActive   = errors.Register(1105, "proposal not active")
	ErrNotEnoughApprovals  = errors.Register(1106, "Not enough owners signed this transaction")
	ErrCoolOffNotElapsed   = errors.Register(1107, "Cool off period has not reached yet.")
	ErrProposalExpired     = errors.Register(1108, "proposal expired")
	ErrOwnerSetChanged     = errors.Register(1109, "owner set changed")
	ErrAccountMismatch     = errors.Register(1110, "account mismatch")
	ErrUnknownTarget       = errors.Register(1111, "unknown sub operation target")
)
