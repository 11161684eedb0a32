package quorum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/quorum/crypto/bech32"
	"github.com/iov-one/quorum/errors"
	"github.com/mr-tron/base58"
)

// AddressLength is the size of every address.
const AddressLength = 20

// Address identifies an account. It is the truncated sha256 digest of the
// condition that controls the account.
type Address []byte

// NewAddress returns the address of data. The address of nil is nil.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

// Clone returns a copy that does not share memory with a.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInvalidInput, "address of %d bytes", len(a))
	}
	return nil
}

// String returns the upper case hex form.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

func (a Address) Bech32String(hrp string) (string, error) {
	raw, err := bech32.Encode(hrp, a)
	if err != nil {
		return "", errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return string(raw), nil
}

func (a Address) Base58String() string {
	return base58.Encode(a)
}

// MarshalJSON uses the hex form instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts any form understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// addressDecoders read the payload of a prefixed address form.
var addressDecoders = map[string]func(string) (Address, error){
	"hex": func(s string) (Address, error) {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidInput, "hex address")
		}
		return raw, nil
	},
	"bech32": func(s string) (Address, error) {
		_, raw, err := bech32.Decode(s)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "bech32 address: %s", err)
		}
		return raw, nil
	},
	"base58": func(s string) (Address, error) {
		raw, err := base58.Decode(s)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "base58 address: %s", err)
		}
		return raw, nil
	},
	"cond": func(s string) (Address, error) {
		c, err := parseCondition(s)
		if err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c.Address(), nil
	},
}

// ParseAddress reads an address written as "<format>:<payload>", where
// format is one of hex, bech32, base58 or cond. Without a prefix the
// payload is hex. An empty payload is a nil address.
func ParseAddress(s string) (Address, error) {
	format, payload := "hex", s
	if i := strings.Index(s, ":"); i >= 0 {
		format, payload = s[:i], s[i+1:]
	}
	if payload == "" {
		return nil, nil
	}
	decode, ok := addressDecoders[format]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidType, "unknown address format %q", format)
	}
	addr, err := decode(payload)
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
