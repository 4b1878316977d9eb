package controllers

import (
	"time"

	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	attendance *repositories.AttendanceRepository
}

func NewAttendanceController() *AttendanceController {
	return &AttendanceController{attendance: repositories.NewAttendanceRepository(database.DB)}
}

// GetRoster returns today's attendance sheet for the class. Students without
// a row for the date report Absent.
func (ac *AttendanceController) GetRoster(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, perr := time.Parse("2006-01-02", d)
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		}
		date = parsed
	}

	roster, err := ac.attendance.Roster(scope.ClassName, scope.TeacherID, date)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"date":   repositories.AttendanceDay(date).Format("2006-01-02"),
		"roster": roster,
		"total":  len(roster),
	})
}

// MarkAttendance upserts one student's status for today.
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	var req struct {
		StudentID uint   `json:"student_id"`
		Status    string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ac.attendance.Mark(req.StudentID, time.Now(), req.Status, scope.TeacherID); err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPSERT", "attendance", req.StudentID, fiber.Map{
		"status": req.Status,
	})

	return c.JSON(fiber.Map{
		"message": "Attendance marked successfully",
	})
}

// MarkAllPresent marks the whole class Present for today in one statement.
func (ac *AttendanceController) MarkAllPresent(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	affected, err := ac.attendance.MarkAllPresent(scope.ClassName, scope.TeacherID, time.Now())
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPSERT", "attendance", 0, fiber.Map{
		"class":    scope.ClassName,
		"affected": affected,
	})

	return c.JSON(fiber.Map{
		"message":  "All students marked present",
		"affected": affected,
	})
}
