package multisig

import (
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		status     ProposalStatus
		approvals  uint32
		rejections uint32
		n, t       uint32
		want       ProposalStatus
	}{
		"no votes": {
			status: ProposalStatus_Active, n: 3, t: 2,
			want: ProposalStatus_Active,
		},
		"two approvals pass": {
			status: ProposalStatus_Active, approvals: 2, n: 3, t: 2,
			want: ProposalStatus_Passed,
		},
		"two rejections fail": {
			status: ProposalStatus_Active, rejections: 2, n: 3, t: 2,
			want: ProposalStatus_Failed,
		},
		"one approval and one rejection": {
			status: ProposalStatus_Active, approvals: 1, rejections: 1, n: 3, t: 2,
			want: ProposalStatus_Active,
		},
		"unanimous multisig fails on first rejection": {
			status: ProposalStatus_Active, rejections: 1, n: 3, t: 3,
			want: ProposalStatus_Failed,
		},
		"single owner passes": {
			status: ProposalStatus_Active, approvals: 1, n: 1, t: 1,
			want: ProposalStatus_Passed,
		},
		"threshold of one survives rejections": {
			status: ProposalStatus_Active, rejections: 2, n: 3, t: 1,
			want: ProposalStatus_Active,
		},
		"passed is terminal for tallying": {
			status: ProposalStatus_Passed, approvals: 2, rejections: 1, n: 3, t: 2,
			want: ProposalStatus_Passed,
		},
		"failed stays failed": {
			status: ProposalStatus_Failed, approvals: 3, n: 3, t: 2,
			want: ProposalStatus_Failed,
		},
		"executed stays executed": {
			status: ProposalStatus_Executed, rejections: 3, n: 3, t: 2,
			want: ProposalStatus_Executed,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := resolve(tc.status, tc.approvals, tc.rejections, tc.n, tc.t)
			assert.Equal(t, tc.want, got)

			// Resolving again with the same tally changes nothing.
			assert.Equal(t, got, resolve(got, tc.approvals, tc.rejections, tc.n, tc.t))
		})
	}
}
