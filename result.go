package quorum

import "github.com/tendermint/tendermint/libs/common"

// CheckResult is returned by a successful Check. Failures are reported
// through the error value only.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated caps the work a transaction may perform when delivered.
	GasAllocated int64
	// GasPayment accumulates the cost charged by the decorators.
	GasPayment int64
}

// DeliverResult is returned by a successful Deliver.
type DeliverResult struct {
	// Data holds a machine readable outcome, for example the id of a
	// created entity.
	Data []byte
	Log  string
	// Tags index the transaction in the node's history.
	Tags []common.KVPair
}
