package quorumtest

import "github.com/iov-one/quorum/coin"

// MustCoin parses a coin written in the human format, for example
// "10.5 IOV". It panics if the format is not valid.
func MustCoin(human string) *coin.Coin {
	c, err := coin.ParseHumanFormat(human)
	if err != nil {
		panic(err)
	}
	return &c
}
