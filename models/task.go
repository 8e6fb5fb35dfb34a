package models

import (
	"fmt"
	"time"
)

// TaskStatus is one of the three lifecycle states of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority is one of the three priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// statusCycle is the fixed transition table. Each state maps to the
// single state that follows it; completed wraps back to pending.
var statusCycle = map[TaskStatus]TaskStatus{
	StatusPending:    StatusInProgress,
	StatusInProgress: StatusCompleted,
	StatusCompleted:  StatusPending,
}

// NextStatus advances one step along the fixed status cycle.
func NextStatus(s TaskStatus) (TaskStatus, error) {
	next, ok := statusCycle[s]
	if !ok {
		return "", fmt.Errorf("unknown task status %q", s)
	}
	return next, nil
}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s TaskStatus) bool {
	_, ok := statusCycle[s]
	return ok
}

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of assigned work on the dashboard.
type Task struct {
	ID         string       `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title      string       `gorm:"type:varchar(200)" json:"title"`
	Priority   TaskPriority `gorm:"type:varchar(20)" json:"priority"`
	Deadline   string       `gorm:"type:varchar(50)" json:"deadline"` // RFC 3339 text, matching the store schema
	Status     TaskStatus   `gorm:"type:varchar(20);index" json:"status"`
	CreatedBy  string       `gorm:"type:varchar(100)" json:"created_by"`
	AssignedTo string       `gorm:"type:varchar(100)" json:"assigned_to"`
	UserID     string       `gorm:"type:varchar(50);index" json:"user_id"`
	CreatedAt  time.Time    `json:"created_at"`
}

// DeadlineTime parses the stored deadline text.
func (t *Task) DeadlineTime() (time.Time, error) {
	return time.Parse(time.RFC3339, t.Deadline)
}
