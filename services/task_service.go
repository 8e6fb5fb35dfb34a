package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDeskGo/models"
	"HRDeskGo/utils"
)

// ErrTaskNotFound means the task does not exist or belongs to another user.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore persists task rows.
type TaskStore interface {
	List(ctx context.Context, userID string) ([]models.Task, error)
	ListOpen(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, userID, taskID string) (*models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error
	Delete(ctx context.Context, userID, taskID string) error
}

type gormTaskStore struct {
	db *gorm.DB
}

func NewGormTaskStore(db *gorm.DB) TaskStore {
	return &gormTaskStore{db: db}
}

func (s *gormTaskStore) List(ctx context.Context, userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListOpen returns every non-completed task across all users, for the
// deadline sweep.
func (s *gormTaskStore) ListOpen(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Where("status <> ?", models.StatusCompleted).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	return tasks, nil
}

func (s *gormTaskStore) FindByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (s *gormTaskStore) Insert(ctx context.Context, task *models.Task) error {
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *gormTaskStore) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	result := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *gormTaskStore) Delete(ctx context.Context, userID, taskID string) error {
	result := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// StatusNotifier is the notification side channel of a status change.
type StatusNotifier interface {
	OnStatusChange(ctx context.Context, task models.Task) error
}

// TaskService owns the task lifecycle: CRUD plus the status cycle and
// its notification side effects.
type TaskService struct {
	store    TaskStore
	notifier StatusNotifier
	logger   *zap.SugaredLogger
}

func NewTaskService(store TaskStore, notifier StatusNotifier, logger *zap.SugaredLogger) *TaskService {
	return &TaskService{store: store, notifier: notifier, logger: logger}
}

// List returns the caller's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.store.List(ctx, userID)
}

// Create inserts a new pending task owned by the session holder.
func (s *TaskService) Create(ctx context.Context, sess *Session, req models.CreateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:         utils.GenerateID(),
		Title:      req.Title,
		Priority:   req.Priority,
		Deadline:   req.Deadline,
		Status:     models.StatusPending,
		CreatedBy:  sess.Email,
		AssignedTo: req.AssignedTo,
		UserID:     sess.UserID,
		CreatedAt:  time.Now(),
	}
	if err := s.store.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Advance moves the task one step along the fixed status cycle. The
// persistence write is strictly ordered before the notification emit:
// a failed write aborts before any notification, so no notification
// ever describes a status change that did not durably persist.
func (s *TaskService) Advance(ctx context.Context, task models.Task) (models.TaskStatus, error) {
	next, err := models.NextStatus(task.Status)
	if err != nil {
		return "", err
	}

	if err := s.store.UpdateStatus(ctx, task.ID, next); err != nil {
		return "", err
	}

	task.Status = next
	if err := s.notifier.OnStatusChange(ctx, task); err != nil {
		// The status update is already durable at this point. The
		// failed insert is logged and not retried, leaving a task
		// updated without its audit notification.
		s.logger.Errorw("status notification failed",
			"error", err,
			"taskID", task.ID,
			"status", next,
		)
		return "", fmt.Errorf("emit status notification: %w", err)
	}

	return next, nil
}

// AdvanceByID loads the caller's task and advances it.
func (s *TaskService) AdvanceByID(ctx context.Context, userID, taskID string) (models.TaskStatus, error) {
	task, err := s.store.FindByID(ctx, userID, taskID)
	if err != nil {
		return "", err
	}
	if !models.ValidStatus(task.Status) {
		return "", fmt.Errorf("task %s has invalid status %q", taskID, task.Status)
	}
	return s.Advance(ctx, *task)
}

// Delete removes the task and returns a fresh fetch of the collection.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) ([]models.Task, error) {
	if err := s.store.Delete(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return s.store.List(ctx, userID)
}
