package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/services"
)

// CalendarController projects tasks onto calendar days.
type CalendarController struct {
	tasks *services.TaskService
}

func NewCalendarController(tasks *services.TaskService) *CalendarController {
	return &CalendarController{tasks: tasks}
}

// Events returns the caller's tasks due on the selected date.
func (cc *CalendarController) Events(c *gin.Context) {
	uid := c.GetString("uid")

	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	tasks, err := cc.tasks.List(c, uid)
	if err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	events := services.EventsOn(tasks, date)
	c.JSON(http.StatusOK, gin.H{
		"date":   date.Format("2006-01-02"),
		"events": events,
	})
}
