package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/middleware"
	"HRDeskGo/routes"
	"HRDeskGo/services"
	"HRDeskGo/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	insightClient, err := services.NewInsightClient(conf.InsightAPIKey, conf.InsightAPIEndpoint)
	if err != nil {
		log.Fatalf("failed to init insight client: %v", err)
	}

	feed := services.NewChangeFeed(config.Logger)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	routes.RegisterRoutes(r, insightClient, feed)

	// Background deadline sweep
	scheduler := services.NewSchedulerService(time.Local)
	if interval := conf.DeadlineSweepInterval(); interval > 0 {
		sessions := services.NewTokenSessions(config.RedisClient)
		notificationService := services.NewNotificationService(
			services.NewGormNotificationStore(config.DB), sessions)
		sweep := services.NewSweepService(
			services.NewGormTaskStore(config.DB), notificationService, config.Logger)

		_, err := scheduler.ScheduleInterval(interval, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := sweep.Run(ctx, time.Now()); err != nil {
				config.Logger.Errorw("deadline sweep failed", "error", err)
			}
			feed.Broadcast("notifications", "insert")
		})
		if err != nil {
			log.Fatalf("failed to schedule deadline sweep: %v", err)
		}
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("server listening on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	scheduler.Stop()
	log.Println("server stopped")
}
