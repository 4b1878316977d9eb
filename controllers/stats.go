package controllers

import (
	"fmt"

	"edutrack_go/database"
	"edutrack_go/services"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	stats   *services.StatsService
	reports *services.ReportService
}

func NewStatsController() *StatsController {
	return &StatsController{
		stats:   services.NewStatsService(database.DB),
		reports: services.NewReportService(database.DB),
	}
}

// GetAdminStats returns teacher roster counts for the admin dashboard.
func (sc *StatsController) GetAdminStats(c *fiber.Ctx) error {
	stats, err := sc.stats.Admin()
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"stats": stats,
	})
}

// GetClassStats returns the per-class dashboard numbers.
func (sc *StatsController) GetClassStats(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	stats, err := sc.stats.Class(scope.ClassName, scope.TeacherID)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"class": scope.ClassName,
		"stats": stats,
	})
}

// ExportMarksReport streams the class marks sheet as an .xlsx download.
func (sc *StatsController) ExportMarksReport(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	data, err := sc.reports.MarksReport(scope.ClassName, scope.TeacherID)
	if err != nil {
		return respondRepoError(c, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="marks_%s.xlsx"`, scope.ClassName))
	return c.Send(data)
}
