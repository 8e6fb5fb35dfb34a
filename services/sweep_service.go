package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"HRDeskGo/models"
)

// SweepService walks every open task and emits deadline notifications
// server-side. No request session exists here, so inserts are scoped to
// each task's owner directly.
type SweepService struct {
	tasks         TaskStore
	notifications *NotificationService
	logger        *zap.SugaredLogger
}

func NewSweepService(tasks TaskStore, notifications *NotificationService, logger *zap.SugaredLogger) *SweepService {
	return &SweepService{tasks: tasks, notifications: notifications, logger: logger}
}

// Run checks every non-completed task against now. A failed emit for
// one task does not stop the sweep for the rest.
func (s *SweepService) Run(ctx context.Context, now time.Time) error {
	open, err := s.tasks.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("deadline sweep: %w", err)
	}

	for _, task := range open {
		class, err := ClassifyTask(task, now)
		if err != nil {
			s.logger.Warnw("skipping task with bad deadline",
				"taskID", task.ID,
				"deadline", task.Deadline,
				"error", err,
			)
			continue
		}
		if class.None() {
			continue
		}

		if class.DueSoon {
			err := s.notifications.EmitFor(ctx, task.UserID,
				"Task Due Soon",
				fmt.Sprintf("The task %q is due on %s", task.Title, task.Deadline),
				models.NotifDeadline,
				task.ID,
			)
			if err != nil {
				s.logger.Errorw("due-soon notification failed", "error", err, "taskID", task.ID)
			}
		}
		if class.Overdue {
			err := s.notifications.EmitFor(ctx, task.UserID,
				"Task Overdue",
				fmt.Sprintf("The task %q is overdue", task.Title),
				models.NotifOverdue,
				task.ID,
			)
			if err != nil {
				s.logger.Errorw("overdue notification failed", "error", err, "taskID", task.ID)
			}
		}
	}
	return nil
}
