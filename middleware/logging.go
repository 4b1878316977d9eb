package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"edutrack_go/database"
	"edutrack_go/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logrus.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"duration":   duration.String(),
			"ip":         c.IP(),
			"user_agent": c.Get("User-Agent"),
		}).Info("HTTP Request")

		return err
	}
}

// LogActivity records an audit row for a user action. Writes happen off the
// request path; Redis buffers them when available, falling back to a direct
// database insert.
func LogActivity(c *fiber.Ctx, action, resource string, resourceID uint, details interface{}) {
	user, err := GetCurrentUser(c)
	if err != nil {
		// No authenticated user, log as system action
		user = &models.User{}
	}

	var detailsJSON string
	if details != nil {
		if detailsBytes, err := json.Marshal(details); err == nil {
			detailsJSON = string(detailsBytes)
		}
	}

	activityLog := models.ActivityLog{
		UserID:     user.ID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    detailsJSON,
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
	}

	go func(al models.ActivityLog) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("panic recovered in LogActivity goroutine")
			}
		}()

		if err := cacheActivityLog(al); err == nil {
			return
		}
		if database.DB == nil {
			logrus.Error("database.DB is nil; cannot save activity log")
			return
		}
		if dbErr := database.DB.Create(&al).Error; dbErr != nil {
			logrus.WithError(dbErr).Error("Failed to save activity log to database")
		}
	}(activityLog)
}

// cacheActivityLog pushes the log entry onto a Redis list for batch draining.
func cacheActivityLog(al models.ActivityLog) error {
	rc := database.GetRedisClient()
	if rc == nil {
		return errRedisUnavailable
	}

	payload, err := json.Marshal(al)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := rc.RPush(ctx, "activity_logs:pending", payload).Err(); err != nil {
		return err
	}
	rc.Expire(ctx, "activity_logs:pending", 24*time.Hour)
	return nil
}

var errRedisUnavailable = errors.New("redis unavailable")

// DrainActivityLogs moves buffered log entries from Redis into the database.
// Called periodically from main.
func DrainActivityLogs() {
	rc := database.GetRedisClient()
	if rc == nil || database.DB == nil {
		return
	}

	ctx := context.Background()
	for {
		payload, err := rc.LPop(ctx, "activity_logs:pending").Result()
		if err != nil {
			return
		}

		var al models.ActivityLog
		if err := json.Unmarshal([]byte(payload), &al); err != nil {
			logrus.WithError(err).Warn("Dropping malformed activity log entry")
			continue
		}
		if err := database.DB.Create(&al).Error; err != nil {
			logrus.WithError(err).Error("Failed to persist drained activity log")
			return
		}
	}
}
