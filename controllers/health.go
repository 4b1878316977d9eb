package controllers

import (
	"context"
	"time"

	"edutrack_go/config"
	"edutrack_go/database"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	startTime time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{startTime: time.Now()}
}

// Health reports service status and dependency reachability.
func (hc *HealthController) Health(c *fiber.Ctx) error {
	status := "ok"
	deps := fiber.Map{}

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.PingContext(ctx); err != nil {
			status = "degraded"
			deps["database"] = "down"
		} else {
			deps["database"] = "up"
		}
	} else {
		status = "degraded"
		deps["database"] = "down"
	}

	if rc := database.GetRedisClient(); rc != nil {
		if err := rc.Ping(ctx).Err(); err != nil {
			deps["redis"] = "down"
		} else {
			deps["redis"] = "up"
		}
	} else {
		deps["redis"] = "disabled"
	}

	return c.JSON(fiber.Map{
		"status":         status,
		"service":        "EduTrack API",
		"version":        "1.0.0",
		"environment":    config.AppConfig.AppEnv,
		"uptime_seconds": time.Since(hc.startTime).Seconds(),
		"dependencies":   deps,
	})
}
