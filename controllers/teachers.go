package controllers

import (
	"strconv"

	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"
	"edutrack_go/utils"

	"github.com/gofiber/fiber/v2"
)

type TeacherController struct {
	teachers *repositories.TeacherRepository
}

func NewTeacherController() *TeacherController {
	return &TeacherController{teachers: repositories.NewTeacherRepository(database.DB)}
}

// GetTeachers returns teachers ordered by code, with optional search and
// department filter.
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	filter := repositories.TeacherFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}

	teachers, err := tc.teachers.List(filter)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"total":    len(teachers),
	})
}

// GetTeacher returns a specific teacher by ID
func (tc *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	teacher, err := tc.teachers.GetByID(uint(id))
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"teacher": teacher,
	})
}

// CreateTeacher creates a login account and teacher profile in one step.
func (tc *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req repositories.CreateTeacherInput
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

	teacher, err := tc.teachers.Create(req)
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "CREATE", "teachers", teacher.ID, fiber.Map{
		"teacher_code": teacher.Code,
		"full_name":    teacher.FullName,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Teacher added successfully",
		"teacher": teacher,
	})
}

// UpdateTeacherStatus toggles a teacher between Active and Inactive.
func (tc *TeacherController) UpdateTeacherStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := tc.teachers.UpdateStatus(uint(id), req.Status); err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPDATE", "teachers", uint(id), fiber.Map{
		"status": req.Status,
	})

	return c.JSON(fiber.Map{
		"message": "Teacher status updated successfully",
	})
}

// GetDepartments returns the known department names for filtering.
func (tc *TeacherController) GetDepartments(c *fiber.Ctx) error {
	departments := []string{
		"Mathematics",
		"Physics",
		"Chemistry",
		"Biology",
		"Computer Science",
		"English",
		"History",
		"Science",
	}

	return c.JSON(fiber.Map{
		"departments": departments,
	})
}
