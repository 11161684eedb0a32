package quorum

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iov-one/quorum/errors"
)

// UnixTime is a point in time with second precision, stored as seconds
// since the epoch. Proposal deadlines and vote timestamps use it so that
// they serialize as plain integers.
type UnixTime int64

func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

// Validate rejects times before the epoch.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrapf(errors.ErrInvalidState, "time %d before epoch", int64(t))
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}

// UnmarshalJSON accepts seconds as a number or an RFC 3339 string, the
// latter being easier to write in a genesis file.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var secs int64
	if err := json.Unmarshal(raw, &secs); err != nil {
		var std time.Time
		if err := json.Unmarshal(raw, &std); err != nil {
			return errors.Wrap(errors.ErrInvalidInput, "time must be seconds or RFC 3339")
		}
		secs = std.Unix()
	}
	if secs < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "time before epoch")
	}
	*t = UnixTime(secs)
	return nil
}

type blockTimeKey struct{}

// WithBlockTime overrides the block time taken from the header.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, blockTimeKey{}, t.UTC())
}

// BlockTime returns the time of the block being processed. A time set with
// WithBlockTime takes precedence over the one of the block header. A zero
// or missing time is an error.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(blockTimeKey{}).(time.Time)
	if !ok {
		if h, found := GetHeader(ctx); found {
			t = h.Time.UTC()
		}
	}
	if t.IsZero() {
		return t, errors.Wrap(errors.ErrHuman, "no block time in context")
	}
	return t, nil
}
