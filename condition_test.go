package quorum_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond     quorum.Condition
		wantExt  string
		wantType string
		wantData []byte
		wantErr  *errors.Error
	}{
		"multisig authority": {
			cond:     quorum.NewCondition("multisig", "usage", []byte{0, 0, 1}),
			wantExt:  "multisig",
			wantType: "usage",
			wantData: []byte{0, 0, 1},
		},
		"data with a new line": {
			cond:     quorum.NewCondition("sigs", "ed25519", []byte("a\nb")),
			wantExt:  "sigs",
			wantType: "ed25519",
			wantData: []byte("a\nb"),
		},
		"data with slashes": {
			cond:     quorum.NewCondition("sigs", "ed25519", []byte("a/b/c")),
			wantExt:  "sigs",
			wantType: "ed25519",
			wantData: []byte("a/b/c"),
		},
		"short extension": {
			cond:    quorum.NewCondition("x", "usage", []byte{1}),
			wantErr: errors.ErrInvalidInput,
		},
		"long type": {
			cond:    quorum.NewCondition("multisig", "authority", []byte{1}),
			wantErr: errors.ErrInvalidInput,
		},
		"no data": {
			cond:    quorum.Condition("sigs/ed25519/"),
			wantErr: errors.ErrInvalidInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			require.True(t, tc.wantErr.Is(err), "got %+v", err)
			require.True(t, tc.wantErr.Is(tc.cond.Validate()))
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantType, typ)
			assert.Equal(t, tc.wantData, data)
		})
	}
}

func TestConditionJSON(t *testing.T) {
	cases := map[string]struct {
		json    string
		want    quorum.Condition
		wantErr *errors.Error
	}{
		"authority": {
			json: `"multisig/usage/0000000000000007"`,
			want: quorum.NewCondition("multisig", "usage", []byte{0, 0, 0, 0, 0, 0, 0, 7}),
		},
		"empty": {
			json: `""`,
		},
		"two sections": {
			json:    `"multisig/0007"`,
			wantErr: errors.ErrInvalidInput,
		},
		"data not hex": {
			json:    `"multisig/usage/zz"`,
			wantErr: errors.ErrInvalidInput,
		},
		"not a string": {
			json:    `7`,
			wantErr: errors.ErrInvalidInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got quorum.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			require.True(t, tc.wantErr.Is(err), "got %+v", err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)

			// encoding gives back the same text
			raw, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(raw))
		})
	}
}

func TestConditionString(t *testing.T) {
	c := quorum.NewCondition("multisig", "usage", []byte{0xab, 1})
	assert.Equal(t, "multisig/usage/AB01", c.String())
	assert.Equal(t, "invalid condition 6D756C7469", quorum.Condition("multi").String())
}
