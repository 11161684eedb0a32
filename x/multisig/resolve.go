package multisig

// resolve returns the status of a proposal given the current vote tally of
// a multisig with n owners and threshold t.
//
// A proposal that is no longer active is never changed. An active proposal
// passes as soon as it collects t approvals and fails as soon as the
// remaining owners can no longer reach the threshold.
func resolve(status ProposalStatus, approvals, rejections, n, t uint32) ProposalStatus {
	if status != ProposalStatus_Active {
		return status
	}
	if approvals >= t {
		return ProposalStatus_Passed
	}
	if rejections > n-t {
		return ProposalStatus_Failed
	}
	return ProposalStatus_Active
}
