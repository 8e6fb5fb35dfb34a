package services

import (
	"time"

	"HRDeskGo/models"
)

// DueSoonWindow is how far ahead of a deadline the "due soon" signal fires.
const DueSoonWindow = 48 * time.Hour

// Classification is the set of deadline signals for a task. DueSoon and
// Overdue are independent: a recently-overdue task carries both, and
// each produces its own notification.
type Classification struct {
	DueSoon bool
	Overdue bool
}

// None reports whether no signal applies.
func (c Classification) None() bool {
	return !c.DueSoon && !c.Overdue
}

// ClassifyDeadline classifies a deadline against now. Completed tasks
// never classify. Pure, no I/O.
func ClassifyDeadline(deadline time.Time, status models.TaskStatus, now time.Time) Classification {
	if status == models.StatusCompleted {
		return Classification{}
	}
	var c Classification
	if !deadline.After(now.Add(DueSoonWindow)) {
		c.DueSoon = true
	}
	if deadline.Before(now) {
		c.Overdue = true
	}
	return c
}

// ClassifyTask parses the task's stored deadline text and classifies it.
func ClassifyTask(task models.Task, now time.Time) (Classification, error) {
	deadline, err := task.DeadlineTime()
	if err != nil {
		return Classification{}, err
	}
	return ClassifyDeadline(deadline, task.Status, now), nil
}
