package coin

import (
	"sort"

	"github.com/iov-one/quorum/errors"
)

// Coins holds at most one coin per currency, sorted by ticker and without
// zero values. Add keeps that form.
type Coins []*Coin

func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set holding c on top of cs. A currency whose total
// drops to zero is removed.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= c.Ticker })
	if i < len(cs) && cs[i].Ticker == c.Ticker {
		sum, err := cs[i].Add(c)
		if err != nil {
			return nil, err
		}
		res := cs.Clone()
		if sum.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = &sum
		return res, nil
	}
	res := make(Coins, 0, len(cs)+1)
	res = append(res, cs[:i]...)
	res = append(res, &c)
	return append(res, cs[i:]...), nil
}

// Subtract returns a new set without c. The result may hold negative
// values.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine returns the sum of both sets.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if the set holds at least c.
func (cs Coins) Contains(c Coin) bool {
	for _, have := range cs {
		if have.Ticker == c.Ticker {
			return have.IsGTE(c)
		}
	}
	return false
}

func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate checks every coin and that the set is sorted, unique and
// without zero values.
func (cs Coins) Validate() error {
	var errs error
	for i, c := range cs {
		errs = errors.Append(errs, errors.Wrap(c.Validate(), c.Ticker))
		if c.IsZero() {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrInvalidState, "zero %s", c.Ticker))
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			errs = errors.Append(errs, errors.Wrap(errors.ErrInvalidState, "not sorted"))
		}
	}
	return errs
}
