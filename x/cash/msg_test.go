package cash

import (
	"strings"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestValidateSendMsg(t *testing.T) {
	src := quorumtest.NewCondition().Address()
	dst := quorumtest.NewCondition().Address()
	amount := quorumtest.MustCoin("10 IOV")

	cases := map[string]struct {
		msg       *SendMsg
		wantField map[string]*errors.Error
	}{
		"valid message": {
			msg: &SendMsg{Metadata: &quorum.Metadata{Schema: 1}, Source: src, Destination: dst, Amount: amount},
			wantField: map[string]*errors.Error{
				"Metadata":    nil,
				"Amount":      nil,
				"Source":      nil,
				"Destination": nil,
			},
		},
		"missing metadata": {
			msg: &SendMsg{Source: src, Destination: dst, Amount: amount},
			wantField: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"negative amount": {
			msg: &SendMsg{Metadata: &quorum.Metadata{Schema: 1}, Source: src, Destination: dst, Amount: quorumtest.MustCoin("-1 IOV")},
			wantField: map[string]*errors.Error{
				"Amount": errors.ErrInvalidAmount,
			},
		},
		"invalid addresses": {
			msg: &SendMsg{Metadata: &quorum.Metadata{Schema: 1}, Source: quorum.Address{1, 2}, Amount: amount},
			wantField: map[string]*errors.Error{
				"Source":      errors.ErrInvalidInput,
				"Destination": errors.ErrInvalidInput,
			},
		},
		"too long memo and ref": {
			msg: &SendMsg{
				Metadata:    &quorum.Metadata{Schema: 1},
				Source:      src,
				Destination: dst,
				Amount:      amount,
				Memo:        strings.Repeat("x", maxMemoSize+1),
				Ref:         make([]byte, maxRefSize+1),
			},
			wantField: map[string]*errors.Error{
				"Memo": errors.ErrInvalidState,
				"Ref":  errors.ErrInvalidState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantField {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}
