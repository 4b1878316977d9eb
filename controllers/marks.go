package controllers

import (
	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"
	"edutrack_go/utils"

	"github.com/gofiber/fiber/v2"
)

type MarksController struct {
	marks *repositories.MarksRepository
}

func NewMarksController() *MarksController {
	return &MarksController{marks: repositories.NewMarksRepository(database.DB)}
}

// GetMarks returns the class marks sheet with totals and letter grades.
func (mc *MarksController) GetMarks(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	entries, err := mc.marks.ListByClass(scope.ClassName, scope.TeacherID)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"marks": entries,
		"total": len(entries),
	})
}

// UpsertMarks writes one student's component scores.
func (mc *MarksController) UpsertMarks(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	var req repositories.UpsertMarksInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := mc.marks.Upsert(req, scope.TeacherID); err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPSERT", "marks", req.StudentID, req)

	return c.JSON(fiber.Map{
		"message": "Marks saved successfully",
	})
}

// UpsertMarksBulk writes scores for several students at once. Each row is an
// independent upsert; the first failure aborts the rest and is reported.
func (mc *MarksController) UpsertMarksBulk(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	var req struct {
		Entries []repositories.UpsertMarksInput `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	for i, entry := range req.Entries {
		if err := utils.ValidateStruct(entry); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"index": i,
			})
		}
		if err := mc.marks.Upsert(entry, scope.TeacherID); err != nil {
			return respondRepoError(c, err)
		}
	}

	middleware.LogActivity(c, "UPSERT", "marks", 0, fiber.Map{
		"class": scope.ClassName,
		"count": len(req.Entries),
	})

	return c.JSON(fiber.Map{
		"message": "Marks saved successfully",
		"count":   len(req.Entries),
	})
}
