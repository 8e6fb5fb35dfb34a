package models

import "testing"

func TestNextStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   TaskStatus
		want TaskStatus
	}{
		{name: "pending advances to in-progress", in: StatusPending, want: StatusInProgress},
		{name: "in-progress advances to completed", in: StatusInProgress, want: StatusCompleted},
		{name: "completed wraps to pending", in: StatusCompleted, want: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.in)
			if err != nil {
				t.Fatalf("NextStatus(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NextStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextStatusUnknown(t *testing.T) {
	t.Parallel()

	if _, err := NextStatus("archived"); err == nil {
		t.Error("NextStatus(\"archived\") should return an error")
	}
}

func TestStatusCycleClosure(t *testing.T) {
	t.Parallel()

	// Three applications of NextStatus return to the original status.
	for _, start := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		s := start
		for i := 0; i < 3; i++ {
			next, err := NextStatus(s)
			if err != nil {
				t.Fatalf("NextStatus(%q) returned error: %v", s, err)
			}
			s = next
		}
		if s != start {
			t.Errorf("cycle from %q did not close, ended at %q", start, s)
		}
	}
}

func TestValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []TaskStatus{"", "done", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestValidPriority(t *testing.T) {
	t.Parallel()

	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !ValidPriority(p) {
			t.Errorf("ValidPriority(%q) = false, want true", p)
		}
	}
	if ValidPriority("urgent") {
		t.Error("ValidPriority(\"urgent\") = true, want false")
	}
}
