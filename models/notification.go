package models

import "time"

// NotificationType tags the task event that produced a notification.
type NotificationType string

const (
	NotifDeadline  NotificationType = "deadline"
	NotifOverdue   NotificationType = "overdue"
	NotifStatus    NotificationType = "status"
	NotifCompleted NotificationType = "completed"
)

// NotificationStatus tracks whether the owner has seen a notification.
type NotificationStatus string

const (
	NotifUnread NotificationStatus = "unread"
	NotifRead   NotificationStatus = "read"
)

// Notification is an append-only record of a task event. It is created
// only by the notification service and mutated only by marking read.
type Notification struct {
	ID        string             `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title     string             `gorm:"type:varchar(200)" json:"title"`
	Message   string             `gorm:"type:text" json:"message"`
	Type      NotificationType   `gorm:"type:varchar(20)" json:"type"`
	Status    NotificationStatus `gorm:"type:varchar(10);index" json:"status"`
	TaskID    string             `gorm:"type:varchar(50);index" json:"task_id"`
	UserID    string             `gorm:"type:varchar(50);index" json:"user_id"`
	CreatedAt time.Time          `json:"created_at"`
}
