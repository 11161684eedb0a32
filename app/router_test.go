package app

import (
	"context"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var (
		msg     = &quorumtest.Msg{RoutePath: "test/1"}
		handler = &quorumtest.Handler{}
	)
	r.Handle("test/1", handler)

	ctx := context.Background()
	db := store.MemStore()
	tx := &quorumtest.Tx{Msg: msg}

	if _, err := r.Check(ctx, db, tx); err != nil {
		t.Fatalf("check failed: %s", err)
	}
	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver failed: %s", err)
	}
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	ctx := context.Background()
	db := store.MemStore()
	tx := &quorumtest.Tx{Msg: &quorumtest.Msg{RoutePath: "test/1"}}

	if _, err := r.Check(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %s", err)
	}
	if _, err := r.Deliver(ctx, db, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %s", err)
	}
}

func TestRouterMessageError(t *testing.T) {
	r := NewRouter()
	r.Handle("test/1", &quorumtest.Handler{})

	tx := &quorumtest.Tx{Err: errors.ErrInvalidMsg}
	_, err := r.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrInvalidMsg, err)
}

func TestRouterInvalidPath(t *testing.T) {
	r := NewRouter()
	handler := &quorumtest.Handler{}

	cases := map[string]string{
		"empty path":           "",
		"invalid path element": "foo:bar",
		"space in path":        "multisig /execute",
	}
	for testName, path := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Panics(t, func() { r.Handle(path, handler) })
		})
	}
}

func TestRouterDuplicatedPath(t *testing.T) {
	r := NewRouter()
	handler := &quorumtest.Handler{}

	r.Handle("multisig/execute", handler)
	assert.Panics(t, func() { r.Handle("multisig/execute", handler) })
}
