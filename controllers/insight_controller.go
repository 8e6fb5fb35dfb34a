package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/services"
)

// InsightController generates LLM performance summaries.
type InsightController struct {
	tasks    *services.TaskService
	insights *services.InsightService
}

func NewInsightController(tasks *services.TaskService, insights *services.InsightService) *InsightController {
	return &InsightController{tasks: tasks, insights: insights}
}

// PerformanceInsight summarizes the caller's tasks over a period.
func (ic *InsightController) PerformanceInsight(c *gin.Context) {
	var req models.PerformanceInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetString("uid")
	tasks, err := ic.tasks.List(c, uid)
	if err != nil {
		config.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}

	summary, err := ic.insights.PerformanceSummary(c, tasks, req)
	if err != nil {
		config.Logger.Errorw("performance insight failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":  req.Period,
		"summary": summary,
	})
}
