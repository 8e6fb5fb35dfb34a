package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/services"
)

// DashboardController serves the stat cards of the dashboard page.
type DashboardController struct {
	tasks *services.TaskService
}

func NewDashboardController(tasks *services.TaskService) *DashboardController {
	return &DashboardController{tasks: tasks}
}

// Stats recomputes the per-status counts from the current collection.
func (dc *DashboardController) Stats(c *gin.Context) {
	uid := c.GetString("uid")

	tasks, err := dc.tasks.List(c, uid)
	if err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	counts := services.CountByStatus(tasks)

	var unread int64
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", uid, models.NotifUnread).
		Count(&unread).Error; err != nil {
		config.Logger.Errorw("unread count failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		Pending:             counts[models.StatusPending],
		InProgress:          counts[models.StatusInProgress],
		Completed:           counts[models.StatusCompleted],
		Total:               int64(len(tasks)),
		UnreadNotifications: unread,
	})
}
