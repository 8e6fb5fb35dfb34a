package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/services"
)

// NotificationController exposes the read side of notifications. Rows
// are only ever created by the notification service; the only mutation
// here is marking read.
type NotificationController struct {
	feed *services.ChangeFeed
}

func NewNotificationController(feed *services.ChangeFeed) *NotificationController {
	return &NotificationController{feed: feed}
}

// ListNotifications returns the caller's notifications, newest first.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	uid := c.GetString("uid")

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		config.Logger.Errorw("notification list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	unread := int64(0)
	for _, n := range notifications {
		if n.Status == models.NotifUnread {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead marks a single notification as read.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("status", models.NotifRead)
	if result.Error != nil {
		config.Logger.Errorw("mark read failed", "error", result.Error, "notificationID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	nc.feed.Broadcast("notifications", "update")
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// MarkAllRead marks every unread notification of the caller as read.
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	uid := c.GetString("uid")

	result := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", uid, models.NotifUnread).
		Update("status", models.NotifRead)
	if result.Error != nil {
		config.Logger.Errorw("mark all read failed", "error", result.Error, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}

	nc.feed.Broadcast("notifications", "update")
	c.JSON(http.StatusOK, gin.H{
		"message": "all notifications marked as read",
		"updated": result.RowsAffected,
	})
}
