package quorumtest

import "github.com/iov-one/quorum"

// calls counts the invocations of a mock.
type calls int

func (c *calls) CallCount() int {
	return int(*c)
}

// Handler returns the configured results, or errors when set.
type Handler struct {
	calls
	CheckResult   quorum.CheckResult
	CheckErr      error
	DeliverResult quorum.DeliverResult
	DeliverErr    error
}

func (h *Handler) Check(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.CheckResult, error) {
	h.calls++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.DeliverResult, error) {
	h.calls++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// WriteHandler sets Key to Value and then fails with Err, if set. It shows
// whether writes of a failed call are kept.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

func (h *WriteHandler) Check(_ quorum.Context, db quorum.KVStore, _ quorum.Tx) (*quorum.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(_ quorum.Context, db quorum.KVStore, _ quorum.Tx) (*quorum.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{}, h.Err
}

// Decorator passes calls on to the next handler unless an error is set.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

func (d *Decorator) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Checker) (*quorum.CheckResult, error) {
	d.calls++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (*quorum.DeliverResult, error) {
	d.calls++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that runs h behind d.
func Decorate(h quorum.Handler, d quorum.Decorator) quorum.Handler {
	return decorated{h: h, d: d}
}

type decorated struct {
	h quorum.Handler
	d quorum.Decorator
}

func (s decorated) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.h)
}

func (s decorated) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.h)
}
