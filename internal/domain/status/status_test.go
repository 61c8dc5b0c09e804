package status

import "testing"

func TestCanTransitionAllowsWorkflowEdges(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{PendingAtDO, ForwardToCO, true},
		{PendingAtDO, PendingAtCO, true},
		{PendingAtCO, Confirm, true},
		{PendingAtCO, BackToDO, true},
		{PendingAtCO, BackToCampus, true},
		{BackToCampus, PendingAtDO, true},
		{Confirm, PendingAtDO, false},
		{Confirm, BackToDO, false},
		{BackToDO, Confirm, false},
		{PendingAtDO, Confirm, false},
		{ForwardToCO, Confirm, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	if CanTransition("Archived", Confirm) {
		t.Fatal("unknown source status must not transition")
	}
	if CanTransition(PendingAtCO, "Archived") {
		t.Fatal("unknown target status must not transition")
	}
}
