package controllers

import (
	"strconv"
	"time"

	"edutrack_go/config"
	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"

	"github.com/gofiber/fiber/v2"
)

type FeeController struct {
	fees *repositories.FeeRepository
}

func NewFeeController() *FeeController {
	return &FeeController{fees: repositories.NewFeeRepository(database.DB)}
}

// billingPeriod reads month/year from the query, defaulting to the current
// calendar month.
func billingPeriod(c *fiber.Ctx) (string, int) {
	now := time.Now()
	month := c.Query("month", now.Month().String())
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year == 0 {
		year = now.Year()
	}
	return month, year
}

// GetFees returns the fee sheet for the class and billing period.
func (fc *FeeController) GetFees(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	month, year := billingPeriod(c)
	entries, err := fc.fees.ListByClass(scope.ClassName, scope.TeacherID, month, year,
		config.AppConfig.DefaultFeeAmount)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"month": month,
		"year":  year,
		"fees":  entries,
		"total": len(entries),
	})
}

// ToggleFeeStatus flips a student's fee between Pending and Paid for the
// billing period.
func (fc *FeeController) ToggleFeeStatus(c *fiber.Ctx) error {
	if _, err := resolveClassScope(c); err != nil {
		return err
	}

	studentID, err := strconv.ParseUint(c.Params("student_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID",
		})
	}

	month, year := billingPeriod(c)
	fee, err := fc.fees.Toggle(uint(studentID), month, year, config.AppConfig.DefaultFeeAmount)
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPSERT", "fees", uint(studentID), fiber.Map{
		"month":  month,
		"year":   year,
		"status": fee.Status,
	})

	return c.JSON(fiber.Map{
		"message": "Fee status updated",
		"fee":     fee,
	})
}
