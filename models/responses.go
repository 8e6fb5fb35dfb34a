package models

import "time"

// TaskListResponse carries a full fetch of the caller's tasks.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

// AdvanceResponse reports the status a task moved to.
type AdvanceResponse struct {
	ID     string     `json:"id"`
	Status TaskStatus `json:"status"`
}

// CalendarEvent is a task projected onto a calendar day.
type CalendarEvent struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Date       time.Time    `json:"date"`
	Type       string       `json:"type"` // always "task"
	Priority   TaskPriority `json:"priority"`
	Status     TaskStatus   `json:"status"`
	CreatedBy  string       `json:"created_by"`
	AssignedTo string       `json:"assigned_to"`
}

// DashboardStats holds the stat-card counts for the dashboard page.
type DashboardStats struct {
	Pending             int64 `json:"pending"`
	InProgress          int64 `json:"in_progress"`
	Completed           int64 `json:"completed"`
	Total               int64 `json:"total"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
