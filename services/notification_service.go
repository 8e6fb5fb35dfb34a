package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"HRDeskGo/models"
	"HRDeskGo/utils"
)

// NotificationStore persists notification rows.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
}

type gormNotificationStore struct {
	db *gorm.DB
}

func NewGormNotificationStore(db *gorm.DB) NotificationStore {
	return &gormNotificationStore{db: db}
}

func (s *gormNotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// NotificationService turns task events into notification rows. Every
// condition produces its own insert; there is no batching.
type NotificationService struct {
	store    NotificationStore
	sessions SessionSource
}

func NewNotificationService(store NotificationStore, sessions SessionSource) *NotificationService {
	return &NotificationService{store: store, sessions: sessions}
}

// Emit inserts exactly one notification scoped to the current session.
// The session is resolved here, not taken from the caller: it may have
// expired since the task was loaded.
func (s *NotificationService) Emit(ctx context.Context, title, message string, kind models.NotificationType, taskID string) error {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	return s.insert(ctx, sess.UserID, title, message, kind, taskID)
}

// EmitFor inserts one notification scoped to an explicit owner. Used by
// the deadline sweep, which runs without a request session.
func (s *NotificationService) EmitFor(ctx context.Context, userID, title, message string, kind models.NotificationType, taskID string) error {
	return s.insert(ctx, userID, title, message, kind, taskID)
}

func (s *NotificationService) insert(ctx context.Context, userID, title, message string, kind models.NotificationType, taskID string) error {
	n := &models.Notification{
		ID:        utils.GenerateID(),
		Title:     title,
		Message:   message,
		Type:      kind,
		Status:    models.NotifUnread,
		TaskID:    taskID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return s.store.Insert(ctx, n)
}

// OnStatusChange emits a "status" notification for the task's new
// status, and a second, independent "completed" notification when the
// new status is completed. Two inserts, not one record with two flags.
func (s *NotificationService) OnStatusChange(ctx context.Context, task models.Task) error {
	err := s.Emit(ctx,
		"Task Status Updated",
		fmt.Sprintf("Task %q status has been updated to %s", task.Title, task.Status),
		models.NotifStatus,
		task.ID,
	)
	if err != nil {
		return err
	}

	if task.Status == models.StatusCompleted {
		return s.Emit(ctx,
			"Task Completed",
			fmt.Sprintf("Task %q has been marked as completed", task.Title),
			models.NotifCompleted,
			task.ID,
		)
	}
	return nil
}

// OnDeadlineCheck classifies the task against now and emits up to two
// independent notifications: "deadline" if due soon, "overdue" if past.
func (s *NotificationService) OnDeadlineCheck(ctx context.Context, task models.Task, now time.Time) error {
	class, err := ClassifyTask(task, now)
	if err != nil {
		return fmt.Errorf("classify deadline: %w", err)
	}

	if class.DueSoon {
		err := s.Emit(ctx,
			"Task Due Soon",
			fmt.Sprintf("The task %q is due on %s", task.Title, task.Deadline),
			models.NotifDeadline,
			task.ID,
		)
		if err != nil {
			return err
		}
	}

	if class.Overdue {
		return s.Emit(ctx,
			"Task Overdue",
			fmt.Sprintf("The task %q is overdue", task.Title),
			models.NotifOverdue,
			task.ID,
		)
	}
	return nil
}
