package domain

import "testing"

func TestProjectStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from ProjectStatus
		to   ProjectStatus
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusPlanning, true},
		{StatusApproved, StatusInProgress, true},
		{StatusApproved, StatusRejected, false},
		{StatusPlanning, StatusInProgress, true},
		{StatusPlanning, StatusReview, false},
		{StatusInProgress, StatusReview, true},
		{StatusInProgress, StatusCompleted, false},
		{StatusReview, StatusInProgress, true},
		{StatusReview, StatusCompleted, true},
		{StatusReview, StatusRejected, false},
		// terminal states allow nothing
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusReview, false},
		// no self-loops
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusInProgress, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseProjectStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want ProjectStatus
		ok   bool
	}{
		{"pending", StatusPending, true},
		{"approved", StatusApproved, true},
		{"rejected", StatusRejected, true},
		{"planning", StatusPlanning, true},
		{"in_progress", StatusInProgress, true},
		{"review", StatusReview, true},
		{"completed", StatusCompleted, true},
		// legacy aliases
		{"new", StatusPending, true},
		{"in-progress", StatusInProgress, true},
		// unknown tokens
		{"", "", false},
		{"archived", "", false},
		{"PENDING", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseProjectStatus(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseProjectStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
