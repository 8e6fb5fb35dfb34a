package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/services"
)

// TaskController exposes the task collection and its lifecycle.
type TaskController struct {
	tasks         *services.TaskService
	notifications *services.NotificationService
	sessions      services.SessionSource
	feed          *services.ChangeFeed
}

func NewTaskController(tasks *services.TaskService, notifications *services.NotificationService, sessions services.SessionSource, feed *services.ChangeFeed) *TaskController {
	return &TaskController{
		tasks:         tasks,
		notifications: notifications,
		sessions:      sessions,
		feed:          feed,
	}
}

// ListTasks returns the caller's tasks, newest first. The optional
// filter query narrows the result to the active or completed half of
// the collection.
func (tc *TaskController) ListTasks(c *gin.Context) {
	uid := c.GetString("uid")

	tasks, err := tc.tasks.List(c, uid)
	if err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	switch c.Query("filter") {
	case "":
	case "active":
		tasks, _ = services.Partition(tasks)
	case "completed":
		_, tasks = services.Partition(tasks)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be active or completed"})
		return
	}

	c.JSON(http.StatusOK, models.TaskListResponse{Tasks: tasks})
}

// CreateTask inserts a new pending task owned by the session holder.
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Re-resolve the session at the point of the write.
	sess, err := tc.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in to create tasks"})
		return
	}

	task, err := tc.tasks.Create(c, sess, req)
	if err != nil {
		config.Logger.Errorw("task creation failed", "error", err, "userID", sess.UserID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc.feed.Broadcast("tasks", "insert")
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// AdvanceTask moves a task one step along the status cycle and emits
// the status-change notifications.
func (tc *TaskController) AdvanceTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	status, err := tc.tasks.AdvanceByID(c, uid, taskID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, services.ErrNoSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		default:
			config.Logger.Errorw("task advance failed", "error", err, "taskID", taskID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task status"})
		}
		return
	}

	tc.feed.Broadcast("tasks", "update")
	tc.feed.Broadcast("notifications", "insert")
	c.JSON(http.StatusOK, models.AdvanceResponse{ID: taskID, Status: status})
}

// DeleteTask removes a task and responds with a fresh fetch of the
// caller's collection.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	tasks, err := tc.tasks.Delete(c, uid, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		config.Logger.Errorw("task delete failed", "error", err, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	tc.feed.Broadcast("tasks", "delete")
	c.JSON(http.StatusOK, models.TaskListResponse{Tasks: tasks})
}

// CheckDeadlines runs the deadline check over the caller's open tasks.
// Each task may produce zero, one, or two notifications.
func (tc *TaskController) CheckDeadlines(c *gin.Context) {
	uid := c.GetString("uid")

	tasks, err := tc.tasks.List(c, uid)
	if err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	now := time.Now()
	checked := 0
	for _, task := range tasks {
		if task.Status == models.StatusCompleted {
			continue
		}
		if err := tc.notifications.OnDeadlineCheck(c, task, now); err != nil {
			if errors.Is(err, services.ErrNoSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			config.Logger.Errorw("deadline check failed", "error", err, "taskID", task.ID)
			continue
		}
		checked++
	}

	tc.feed.Broadcast("notifications", "insert")
	c.JSON(http.StatusOK, gin.H{"checked": checked})
}
