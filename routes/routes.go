package routes

import (
	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/controllers"
	"HRDeskGo/middleware"
	"HRDeskGo/services"
)

func RegisterRoutes(r *gin.Engine, insightClient *services.InsightClient, feed *services.ChangeFeed) {
	sessions := services.NewTokenSessions(config.RedisClient)

	notificationService := services.NewNotificationService(
		services.NewGormNotificationStore(config.DB), sessions)
	taskService := services.NewTaskService(
		services.NewGormTaskStore(config.DB), notificationService, config.Logger)
	insightService := services.NewInsightService(insightClient)

	authController := controllers.NewAuthController(sessions)
	taskController := controllers.NewTaskController(taskService, notificationService, sessions, feed)
	notificationController := controllers.NewNotificationController(feed)
	dashboardController := controllers.NewDashboardController(taskService)
	calendarController := controllers.NewCalendarController(taskService)
	insightController := controllers.NewInsightController(taskService, insightService)
	feedController := controllers.NewFeedController(feed)
	employeeController := controllers.EmployeeController{}
	documentController := controllers.DocumentController{}

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(sessions))
	{
		private.POST("/auth/logout", authController.Logout)
		private.GET("/user", authController.Me)

		private.GET("/tasks", taskController.ListTasks)
		private.POST("/tasks", taskController.CreateTask)
		private.POST("/tasks/:id/advance", taskController.AdvanceTask)
		private.DELETE("/tasks/:id", taskController.DeleteTask)
		private.POST("/deadline-check", taskController.CheckDeadlines)

		private.GET("/notifications", notificationController.ListNotifications)
		private.PUT("/notifications/:id/read", notificationController.MarkRead)
		private.POST("/notifications/read-all", notificationController.MarkAllRead)

		private.GET("/dashboard/stats", dashboardController.Stats)
		private.GET("/calendar/events", calendarController.Events)

		private.GET("/employees", employeeController.ListEmployees)
		private.POST("/employees", employeeController.CreateEmployee)
		private.GET("/documents", documentController.ListDocuments)

		private.POST("/insights/performance", insightController.PerformanceInsight)

		private.GET("/feed", feedController.Subscribe)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
