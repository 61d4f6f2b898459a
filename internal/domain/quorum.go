package domain

// RequiredApprovals returns the approval quorum for a room of n players:
// ceil(n/2), with a floor of 1 for rooms smaller than two players. The
// result is non-decreasing in n.
func RequiredApprovals(n int) int {
	if n < 2 {
		return 1
	}
	return (n + 1) / 2
}

// ResolveSubmission decides a submission from the current vote tally.
// Approval is checked first, so when both thresholds are met simultaneously
// the submission is approved. If every possible voter has voted without
// crossing either threshold (reachable when players join or leave mid-vote),
// a simple majority of cast votes decides, with ties rejected.
func ResolveSubmission(totalPlayers, approvals, rejections int) SubmissionStatus {
	if approvals >= RequiredApprovals(totalPlayers) {
		return SubmissionApproved
	}
	if rejections >= (totalPlayers+1)/2 {
		return SubmissionRejected
	}
	if approvals+rejections >= totalPlayers {
		if approvals > rejections {
			return SubmissionApproved
		}
		return SubmissionRejected
	}
	return SubmissionPending
}
