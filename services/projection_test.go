package services

import (
	"testing"
	"time"

	"HRDeskGo/models"
)

func TestCountByStatus(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{ID: "t1", Status: models.StatusPending},
		{ID: "t2", Status: models.StatusPending},
		{ID: "t3", Status: models.StatusInProgress},
		{ID: "t4", Status: models.StatusCompleted},
	}

	counts := CountByStatus(tasks)
	if counts[models.StatusPending] != 2 {
		t.Errorf("pending = %d, want 2", counts[models.StatusPending])
	}
	if counts[models.StatusInProgress] != 1 {
		t.Errorf("in-progress = %d, want 1", counts[models.StatusInProgress])
	}
	if counts[models.StatusCompleted] != 1 {
		t.Errorf("completed = %d, want 1", counts[models.StatusCompleted])
	}

	// Empty collections still report all three statuses.
	empty := CountByStatus(nil)
	for _, s := range []models.TaskStatus{models.StatusPending, models.StatusInProgress, models.StatusCompleted} {
		if v, ok := empty[s]; !ok || v != 0 {
			t.Errorf("empty count for %q = %d (present %v), want 0", s, v, ok)
		}
	}
}

func TestEventsOn(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		{
			ID:         "morning",
			Title:      "standup notes",
			Deadline:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Status:     models.StatusPending,
			Priority:   models.PriorityLow,
			CreatedBy:  "hr@corp.test",
			AssignedTo: "Jane Smith",
		},
		{
			ID:       "evening",
			Title:    "payroll export",
			Deadline: time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC).Format(time.RFC3339),
			Status:   models.StatusInProgress,
		},
		{
			ID:       "next-day",
			Deadline: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Status:   models.StatusPending,
		},
		{
			ID:       "previous-day",
			Deadline: time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC).Format(time.RFC3339),
			Status:   models.StatusPending,
		},
		{
			ID:       "garbage-deadline",
			Deadline: "whenever",
			Status:   models.StatusPending,
		},
	}

	events := EventsOn(tasks, day)
	if len(events) != 2 {
		t.Fatalf("EventsOn returned %d events, want 2", len(events))
	}

	got := map[string]bool{}
	for _, e := range events {
		got[e.ID] = true
		if e.Type != "task" {
			t.Errorf("event %s type = %q, want \"task\"", e.ID, e.Type)
		}
	}
	if !got["morning"] || !got["evening"] {
		t.Errorf("EventsOn = %v, want morning and evening", got)
	}

	// Projections carry the display fields through.
	for _, e := range events {
		if e.ID != "morning" {
			continue
		}
		if e.Title != "standup notes" || e.Priority != models.PriorityLow ||
			e.CreatedBy != "hr@corp.test" || e.AssignedTo != "Jane Smith" {
			t.Errorf("event fields not carried through: %+v", e)
		}
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{ID: "t1", Status: models.StatusPending},
		{ID: "t2", Status: models.StatusCompleted},
		{ID: "t3", Status: models.StatusInProgress},
	}

	active, completed := Partition(tasks)
	if len(active) != 2 {
		t.Errorf("active = %d tasks, want 2", len(active))
	}
	if len(completed) != 1 || completed[0].ID != "t2" {
		t.Errorf("completed = %v, want only t2", completed)
	}

	// Input order preserved within each half.
	if active[0].ID != "t1" || active[1].ID != "t3" {
		t.Errorf("active order = %v, want t1 then t3", active)
	}
}
