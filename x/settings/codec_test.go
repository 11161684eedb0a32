package settings

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCodecRoundTrip(t *testing.T) {
	fee := coin.NewCoin(5, 0, "IOV")
	meta := &quorum.Metadata{Schema: 1}
	ops := quorumtest.NewCondition().Address()

	cases := map[string]struct {
		obj interface {
			Marshal() ([]byte, error)
		}
		empty interface {
			Unmarshal([]byte) error
		}
	}{
		"settings": {
			obj: &Settings{
				Metadata:            meta,
				Initialized:         true,
				OpsFeeAccount:       ops,
				Admin:               quorumtest.NewCondition().Address(),
				MultisigCreationFee: &fee,
				ProposalCreationFee: &fee,
			},
			empty: &Settings{},
		},
		"init message": {
			obj:   &InitSettingsMsg{Metadata: meta, OpsFeeAccount: ops, MultisigCreationFee: &fee, ProposalCreationFee: &fee},
			empty: &InitSettingsMsg{},
		},
		"configuration": {
			obj:   &Configuration{Metadata: meta, Deployer: ops},
			empty: &Configuration{},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := tc.obj.Marshal()
			assert.Nil(t, err)
			assert.Nil(t, tc.empty.Unmarshal(raw))
			assert.Equal(t, tc.obj, tc.empty)
		})
	}
}
