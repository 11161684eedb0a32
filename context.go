package quorum

import (
	"context"
	"fmt"
	"regexp"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries block data from the application down to the handlers.
// Extensions add their own keys, for example the signers of a transaction.
type Context = context.Context

type ctxKey uint8

const (
	headerKey ctxKey = iota + 1
	heightKey
	chainIDKey
	loggerKey
)

// DefaultLogger is returned when a context carries no logger.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID reports whether s can name a chain.
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,25}$`).MatchString

// setOnce stores value under key. Block data is set by the application and
// must not be replaced further down the stack.
func setOnce(ctx Context, key ctxKey, value interface{}) Context {
	if ctx.Value(key) != nil {
		panic(fmt.Sprintf("context key %d already set", key))
	}
	return context.WithValue(ctx, key, value)
}

func WithHeader(ctx Context, header abci.Header) Context {
	return setOnce(ctx, headerKey, header)
}

func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(headerKey).(abci.Header)
	return h, ok
}

func WithHeight(ctx Context, height int64) Context {
	return setOnce(ctx, heightKey, height)
}

func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(heightKey).(int64)
	return h, ok
}

// WithChainID panics on an invalid chain id.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain id %q", chainID))
	}
	return setOnce(ctx, chainIDKey, chainID)
}

// GetChainID panics when no chain id was set. Every transaction is
// processed after genesis, so this is a setup error.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey).(string)
	if !ok {
		panic("no chain id in context")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithLogInfo adds keyvals to every line logged with the returned context.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(loggerKey).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
