package cash

import (
	"encoding/hex"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCodec(t *testing.T) {
	iov := coin.NewCoin(12, 500, "IOV")
	eth := coin.NewCoin(0, 1, "ETH")

	set := &Set{Metadata: &quorum.Metadata{Schema: 1}, Coins: []*coin.Coin{&eth, &iov}}
	raw, err := set.Marshal()
	assert.Nil(t, err)
	var gotSet Set
	assert.Nil(t, gotSet.Unmarshal(raw))
	assert.Equal(t, set, &gotSet)

	send := &SendMsg{
		Metadata:    &quorum.Metadata{Schema: 1},
		Source:      quorumtest.NewCondition().Address(),
		Destination: quorumtest.NewCondition().Address(),
		Amount:      &iov,
		Memo:        "rent",
	}
	raw, err = send.Marshal()
	assert.Nil(t, err)
	var gotSend SendMsg
	assert.Nil(t, gotSend.Unmarshal(raw))
	assert.Equal(t, send, &gotSend)

	// memo is field 5, amount an embedded coin in field 4
	raw, err = (&SendMsg{Amount: &coin.Coin{Whole: 1}, Memo: "a"}).Marshal()
	assert.Nil(t, err)
	assert.Equal(t, "220208012a0161", hex.EncodeToString(raw))
}
