package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

var errTest = Register(9001, "test failure")

func TestIs(t *testing.T) {
	var nilRoot *Error

	cases := map[string]struct {
		root *Error
		err  error
		want bool
	}{
		"same root": {
			root: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"wrapped twice": {
			root: ErrNotFound,
			err:  Wrap(Wrapf(ErrNotFound, "proposal %d", 4), "execute"),
			want: true,
		},
		"other root": {
			root: ErrNotFound,
			err:  Wrap(ErrUnauthorized, "vote"),
		},
		"stdlib error": {
			root: ErrNotFound,
			err:  stderrors.New("not found"),
		},
		"member of a group": {
			root: ErrEmpty,
			err:  Append(ErrInvalidInput, Field("Owners", ErrEmpty, "")),
			want: true,
		},
		"nil root and nil error": {
			root: nilRoot,
			want: true,
		},
		"nil root and typed nil error": {
			root: nilRoot,
			err:  (*wrappedError)(nil),
			want: true,
		},
		"nil root and an error": {
			root: nilRoot,
			err:  ErrNotFound,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.root.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want a panic")
		}
	}()
	Register(errTest.ABCICode(), "again")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Wrapf(nil, "nothing %d", 1); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(Wrapf(errTest, "owner %d", 2), "update multisig")
	if want, got := "update multisig: owner 2: test failure", err.Error(); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
	if want, got := err.Error(), fmt.Sprintf("%s", err); want != got {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatShowsCreationPlace(t *testing.T) {
	err := Wrap(errTest, "cool off")

	short := fmt.Sprintf("%v", err)
	if !strings.HasPrefix(short, "cool off: test failure [") || !strings.Contains(short, "errors_test.go:") {
		t.Fatalf("unexpected short form %q", short)
	}

	full := fmt.Sprintf("%+v", err)
	if !strings.Contains(full, "TestFormatShowsCreationPlace") {
		t.Fatalf("trace does not reach the caller: %s", full)
	}
	if strings.Contains(full, "errors.Wrap\n") {
		t.Fatalf("trace contains the wrapper: %s", full)
	}
	if !strings.HasSuffix(full, "cool off: test failure") {
		t.Fatalf("trace is not followed by the message: %s", full)
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("panic value is lost: %v", err)
	}
}
