package services

import (
	"context"
	"testing"
	"time"

	"HRDeskGo/models"
)

func TestSweepRun(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	store := newFakeTaskStore(
		models.Task{
			ID: "due-soon", UserID: "u1", Title: "sign offer",
			Deadline: now.Add(24 * time.Hour).Format(time.RFC3339),
			Status:   models.StatusPending,
		},
		models.Task{
			ID: "overdue", UserID: "u2", Title: "archive records",
			Deadline: now.Add(-24 * time.Hour).Format(time.RFC3339),
			Status:   models.StatusInProgress,
		},
		models.Task{
			ID: "far-out", UserID: "u1", Title: "plan offsite",
			Deadline: now.AddDate(0, 2, 0).Format(time.RFC3339),
			Status:   models.StatusPending,
		},
		models.Task{
			ID: "done", UserID: "u1", Title: "closed work",
			Deadline: now.Add(-48 * time.Hour).Format(time.RFC3339),
			Status:   models.StatusCompleted,
		},
		models.Task{
			ID: "broken", UserID: "u3", Title: "bad row",
			Deadline: "not a timestamp",
			Status:   models.StatusPending,
		},
	)

	notifStore := &fakeNotificationStore{}
	// No session exists in the sweep context.
	notifications := newTestEmitter(notifStore, nil)
	sweep := NewSweepService(store, notifications, testLogger())

	if err := sweep.Run(context.Background(), now); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// due-soon: 1 deadline. overdue: 1 deadline + 1 overdue. Others: 0.
	if len(notifStore.inserted) != 3 {
		t.Fatalf("sweep inserted %d notifications, want 3", len(notifStore.inserted))
	}

	byUser := map[string][]models.NotificationType{}
	for _, n := range notifStore.inserted {
		byUser[n.UserID] = append(byUser[n.UserID], n.Type)
	}
	if got := byUser["u1"]; len(got) != 1 || got[0] != models.NotifDeadline {
		t.Errorf("u1 notifications = %v, want one deadline", got)
	}
	if got := byUser["u2"]; len(got) != 2 || got[0] != models.NotifDeadline || got[1] != models.NotifOverdue {
		t.Errorf("u2 notifications = %v, want deadline then overdue", got)
	}
	if got := byUser["u3"]; len(got) != 0 {
		t.Errorf("u3 notifications = %v, want none for a bad deadline", got)
	}
}
