// Package bech32 renders addresses in the human readable bech32 form,
// for example "iov1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5qjzkwa".
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/quorum/errors"
)

// Decode returns the human readable prefix and the payload of s.
func Decode(s string) (string, []byte, error) {
	prefix, groups, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	payload, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return prefix, payload, nil
}

// Encode returns payload as a bech32 string with the given prefix.
func Encode(prefix string, payload []byte) ([]byte, error) {
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err == nil {
		var s string
		if s, err = bech32.Encode(prefix, groups); err == nil {
			return []byte(s), nil
		}
	}
	return nil, errors.Wrapf(errors.ErrInvalidInput, "bech32 %q: %s", prefix, err)
}
