package coin

import (
	"encoding/json"
	"regexp"

	"github.com/iov-one/quorum/errors"
	"github.com/shopspring/decimal"
)

// IsCC tells if given string is a valid currency ticker.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxWhole is the largest whole amount of a single coin.
	MaxWhole int64 = 999999999999999
	// fracDigits is the number of decimal places stored in Fractional.
	fracDigits = 9
	// fracUnit is the number of fractional units in a whole one.
	fracUnit int64 = 1000000000
)

var maxWhole = decimal.New(MaxWhole, 0)

// NewCoin returns a coin of given value.
func NewCoin(whole, fractional int64, ticker string) Coin {
	return Coin{Whole: whole, Fractional: fractional, Ticker: ticker}
}

// amount returns the value of the coin as a decimal number.
func (c Coin) amount() decimal.Decimal {
	return decimal.New(c.Whole, 0).Add(decimal.New(c.Fractional, -fracDigits))
}

// fromAmount splits a decimal number back into whole and fractional
// parts. Both parts always have the same sign.
func fromAmount(d decimal.Decimal, ticker string) (Coin, error) {
	whole := d.Truncate(0)
	if whole.Abs().GreaterThan(maxWhole) {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s %s", d, ticker)
	}
	frac := d.Sub(whole).Shift(fracDigits)
	if !frac.Equal(frac.Truncate(0)) {
		return Coin{}, errors.Wrapf(errors.ErrInvalidInput, "more than %d decimal places: %s", fracDigits, d)
	}
	return Coin{Whole: whole.IntPart(), Fractional: frac.IntPart(), Ticker: ticker}, nil
}

// Add returns the sum of both coins. A zero coin without a ticker is
// neutral, any other ticker mismatch is an ErrCurrency.
func (c Coin) Add(o Coin) (Coin, error) {
	switch {
	case c.Ticker == "" && c.IsZero():
		return o, nil
	case o.Ticker == "" && o.IsZero():
		return c, nil
	case c.Ticker != o.Ticker:
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}
	return fromAmount(c.amount().Add(o.amount()), c.Ticker)
}

// Subtract returns c minus o.
func (c Coin) Subtract(o Coin) (Coin, error) {
	return c.Add(o.Negative())
}

// Negative returns the coin with the opposite value.
func (c Coin) Negative() Coin {
	return Coin{Whole: -c.Whole, Fractional: -c.Fractional, Ticker: c.Ticker}
}

// IsEmpty returns true for a nil or a zero value coin.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

func (c Coin) IsPositive() bool {
	return c.amount().Sign() > 0
}

func (c Coin) IsNonNegative() bool {
	return c.amount().Sign() >= 0
}

// IsGTE returns true if both coins are of the same currency and c is
// worth at least as much as o.
func (c Coin) IsGTE(o Coin) bool {
	return c.Ticker == o.Ticker && c.amount().GreaterThanOrEqual(o.amount())
}

func (c Coin) Equals(o Coin) bool {
	return c == o
}

// Clone returns an independent copy.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

// Validate checks the ticker and that the value is in range. Negative
// values are valid.
func (c Coin) Validate() error {
	var errs error
	if !IsCC(c.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker))
	}
	if c.Whole > MaxWhole || c.Whole < -MaxWhole {
		errs = errors.Append(errs, errors.Wrap(errors.ErrOverflow, "whole"))
	}
	if c.Fractional >= fracUnit || c.Fractional <= -fracUnit {
		errs = errors.Append(errs, errors.Wrap(errors.ErrOverflow, "fractional"))
	}
	if c.Whole != 0 && c.Fractional != 0 && (c.Whole > 0) != (c.Fractional > 0) {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInvalidState, "mismatched sign"))
	}
	return errs
}

// String returns the human format of the coin, for example "10.5 IOV".
func (c Coin) String() string {
	if c.Ticker == "" {
		return c.amount().String()
	}
	return c.amount().String() + " " + c.Ticker
}

var humanFormat = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*([A-Z]{3,4})\s*$`)

// ParseHumanFormat reads a coin written as "<amount> <ticker>", for example
// "10 IOV" or "0.25 IOV".
func ParseHumanFormat(s string) (Coin, error) {
	m := humanFormat.FindStringSubmatch(s)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInvalidInput, "invalid coin format %q", s)
	}
	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrInvalidInput, "invalid amount %q: %s", m[1], err)
	}
	return fromAmount(d, m[2])
}

// UnmarshalJSON accepts both the human format string and an object with
// whole, fractional and ticker fields.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	// A distinct type avoids calling this method again.
	type plain Coin
	return json.Unmarshal(raw, (*plain)(c))
}

// Set implements flag.Value.
func (c *Coin) Set(raw string) error {
	parsed, err := ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
