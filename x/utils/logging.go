package utils

import (
	"time"

	"github.com/iov-one/quorum"
)

// Logging writes one log line per transaction with its route, outcome and
// how long the rest of the stack took. Failures are logged as errors.
// Successful deliveries are logged as info and successful checks as
// debug, since every tx is checked at least once per node.
type Logging struct{}

var _ quorum.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Checker) (*quorum.CheckResult, error) {
	started := time.Now()
	res, err := next.Check(ctx, db, tx)
	entry := txEntry{path: routeOf(tx), took: time.Since(started), err: err, quiet: true}
	if err == nil {
		entry.log = res.Log
	}
	entry.write(ctx)
	return res, err
}

func (Logging) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (*quorum.DeliverResult, error) {
	started := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	entry := txEntry{path: routeOf(tx), took: time.Since(started), err: err}
	if err == nil {
		entry.log = res.Log
	}
	entry.write(ctx)
	return res, err
}

type txEntry struct {
	path  string
	log   string
	took  time.Duration
	err   error
	quiet bool
}

func (e txEntry) write(ctx quorum.Context) {
	kv := []interface{}{"duration", e.took / time.Microsecond}
	if e.path != "" {
		kv = append(kv, "path", e.path)
	}
	logger := quorum.GetLogger(ctx)
	switch {
	case e.err != nil:
		logger.Error(e.log, append(kv, "err", e.err)...)
	case e.quiet:
		logger.Debug(e.log, kv...)
	default:
		logger.Info(e.log, kv...)
	}
}

// routeOf is empty when the tx carries no readable message.
func routeOf(tx quorum.Tx) string {
	if tx == nil {
		return ""
	}
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return ""
}
