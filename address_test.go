package quorum_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	// the authority of multisig 1
	authority := quorum.NewCondition("multisig", "usage", []byte{0, 0, 0, 0, 0, 0, 0, 1})
	addr := authority.Address()
	b32, err := addr.Bech32String("tiov")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    quorum.Address
		wantErr *errors.Error
	}{
		"plain hex": {
			enc:  addr.String(),
			want: addr,
		},
		"lower case hex with prefix": {
			enc:  "hex:" + strings.ToLower(addr.String()),
			want: addr,
		},
		"condition": {
			enc:  "cond:multisig/usage/0000000000000001",
			want: addr,
		},
		"bech32": {
			enc:  "bech32:" + b32,
			want: addr,
		},
		"base58": {
			enc:  "base58:" + addr.Base58String(),
			want: addr,
		},
		"empty": {
			enc: "",
		},
		"empty with prefix": {
			enc: "bech32:",
		},
		"short hex": {
			enc:     "00AABB",
			wantErr: errors.ErrInvalidInput,
		},
		"not hex": {
			enc:     "multisig",
			wantErr: errors.ErrInvalidInput,
		},
		"invalid base58": {
			enc:     "base58:0OIl",
			wantErr: errors.ErrInvalidInput,
		},
		"invalid condition": {
			enc:     "cond:x/usage/01",
			wantErr: errors.ErrInvalidInput,
		},
		"unknown format": {
			enc:     "b64:AAEC",
			wantErr: errors.ErrInvalidType,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := quorum.ParseAddress(tc.enc)
			require.True(t, tc.wantErr.Is(err), "got %+v", err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := quorum.NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Address()
	require.Len(t, addr, quorum.AddressLength)

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var back quorum.Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, addr.Equals(back))

	err = json.Unmarshal([]byte(`"base58:`+addr.Base58String()+`"`), &back)
	require.NoError(t, err)
	assert.True(t, addr.Equals(back))

	err = json.Unmarshal([]byte(`42`), &back)
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestAddressClone(t *testing.T) {
	addr := quorum.NewAddress([]byte("treasury"))
	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
	assert.Nil(t, quorum.Address(nil).Clone())
	assert.Nil(t, quorum.NewAddress(nil))
	assert.Equal(t, "(nil)", quorum.Address(nil).String())
}
