package services

import (
	"time"

	"HRDeskGo/models"
)

// Read-side projections over the current task collection. All pure:
// recomputed per request, never cached, no mutation of the input.

// CountByStatus counts tasks per lifecycle status.
func CountByStatus(tasks []models.Task) map[models.TaskStatus]int64 {
	counts := map[models.TaskStatus]int64{
		models.StatusPending:    0,
		models.StatusInProgress: 0,
		models.StatusCompleted:  0,
	}
	for _, task := range tasks {
		counts[task.Status]++
	}
	return counts
}

// EventsOn maps tasks whose deadline falls within the selected calendar
// day to display events. Tasks with unparseable deadlines are skipped.
func EventsOn(tasks []models.Task, date time.Time) []models.CalendarEvent {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	events := make([]models.CalendarEvent, 0)
	for _, task := range tasks {
		deadline, err := task.DeadlineTime()
		if err != nil {
			continue
		}
		if deadline.Before(start) || deadline.After(end) {
			continue
		}
		events = append(events, models.CalendarEvent{
			ID:         task.ID,
			Title:      task.Title,
			Date:       deadline,
			Type:       "task",
			Priority:   task.Priority,
			Status:     task.Status,
			CreatedBy:  task.CreatedBy,
			AssignedTo: task.AssignedTo,
		})
	}
	return events
}

// Partition splits tasks into active (anything not completed) and completed.
func Partition(tasks []models.Task) (active, completed []models.Task) {
	for _, task := range tasks {
		if task.Status == models.StatusCompleted {
			completed = append(completed, task)
		} else {
			active = append(active, task)
		}
	}
	return active, completed
}
