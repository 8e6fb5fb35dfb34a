package models

import (
	"fmt"
	"time"
)

// RegisterRequest creates a new dashboard account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateTaskRequest creates a new task. Status is always pending on
// creation; creator and owner come from the session.
type CreateTaskRequest struct {
	Title      string       `json:"title" binding:"required"`
	Deadline   string       `json:"deadline" binding:"required"`
	Priority   TaskPriority `json:"priority"`
	AssignedTo string       `json:"assigned_to"`
}

// Validate checks the enum and deadline fields beyond what binding covers.
func (r *CreateTaskRequest) Validate() error {
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if !ValidPriority(r.Priority) {
		return fmt.Errorf("invalid priority %q, must be one of: low, medium, high", r.Priority)
	}
	if _, err := time.Parse(time.RFC3339, r.Deadline); err != nil {
		return fmt.Errorf("invalid deadline, expected RFC 3339 timestamp: %w", err)
	}
	return nil
}

// CreateEmployeeRequest adds a directory entry.
type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	ImageURL   string `json:"image_url"`
}

// PerformanceInsightRequest asks for an LLM summary over a date range.
type PerformanceInsightRequest struct {
	Period    string    `json:"period" binding:"required"` // day, week, month
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (r *PerformanceInsightRequest) Validate() error {
	validPeriods := map[string]bool{"day": true, "week": true, "month": true}
	if !validPeriods[r.Period] {
		return fmt.Errorf("invalid period, must be one of: day, week, month")
	}

	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()

	if r.StartDate.After(r.EndDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}
