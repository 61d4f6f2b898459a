package domain

import "testing"

func TestRequiredApprovals(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
		{10, 5},
	}
	for _, tt := range tests {
		if got := RequiredApprovals(tt.players); got != tt.want {
			t.Fatalf("RequiredApprovals(%d) = %d, want %d", tt.players, got, tt.want)
		}
	}
}

func TestRequiredApprovalsMonotonic(t *testing.T) {
	prev := 0
	for n := 1; n <= 50; n++ {
		got := RequiredApprovals(n)
		if got < prev {
			t.Fatalf("RequiredApprovals decreased at n=%d: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestResolveSubmissionThresholds(t *testing.T) {
	// Meeting the approval quorum approves for any player count.
	for n := 1; n <= 20; n++ {
		if got := ResolveSubmission(n, RequiredApprovals(n), 0); got != SubmissionApproved {
			t.Fatalf("resolve(%d, required, 0) = %s, want approved", n, got)
		}
	}
	// Meeting the rejection quorum rejects.
	for n := 2; n <= 20; n++ {
		if got := ResolveSubmission(n, 0, (n+1)/2); got != SubmissionRejected {
			t.Fatalf("resolve(%d, 0, ceil(n/2)) = %s, want rejected", n, got)
		}
	}
}

func TestResolveSubmissionScenarios(t *testing.T) {
	tests := []struct {
		players, approvals, rejections int
		want                           SubmissionStatus
	}{
		{5, 3, 0, SubmissionApproved},
		{5, 2, 2, SubmissionPending},
		{5, 0, 3, SubmissionRejected},
		{5, 2, 1, SubmissionPending},
		{2, 1, 0, SubmissionApproved},
		{2, 0, 1, SubmissionRejected},
		{1, 1, 0, SubmissionApproved},
		{1, 0, 0, SubmissionPending},
		{4, 3, 1, SubmissionApproved},
		{3, 1, 2, SubmissionRejected},
	}
	for _, tt := range tests {
		got := ResolveSubmission(tt.players, tt.approvals, tt.rejections)
		if got != tt.want {
			t.Fatalf("resolve(%d, %d, %d) = %s, want %s",
				tt.players, tt.approvals, tt.rejections, got, tt.want)
		}
	}
}

func TestResolveSubmissionApprovalWinsTie(t *testing.T) {
	// With 4 players both quorums are 2; approval is checked first.
	if got := ResolveSubmission(4, 2, 2); got != SubmissionApproved {
		t.Fatalf("resolve(4, 2, 2) = %s, want approved", got)
	}
}

func TestSubmissionTally(t *testing.T) {
	s := &Submission{
		Votes: map[string]Vote{
			"a": {Approve: true},
			"b": {Approve: true},
			"c": {Approve: false},
		},
	}
	approvals, rejections := s.Tally()
	if approvals != 2 || rejections != 1 {
		t.Fatalf("tally = %d/%d, want 2/1", approvals, rejections)
	}
}
