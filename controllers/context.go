package controllers

import (
	"strconv"

	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/models"
	"edutrack_go/repositories"

	"github.com/gofiber/fiber/v2"
)

// classScope is the (class, teacher) pair every class-level operation runs
// under. Teachers are pinned to their own profile; admins pass teacher_id
// explicitly.
type classScope struct {
	ClassName string
	TeacherID uint
}

// resolveClassScope derives the scope from the authenticated user and the
// class query parameter. When a teacher omits the class, their first assigned
// class is used.
func resolveClassScope(c *fiber.Ctx) (*classScope, error) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	className := c.Query("class")

	if user.Role == "admin" {
		teacherID, _ := strconv.ParseUint(c.Query("teacher_id"), 10, 32)
		if teacherID == 0 || className == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "class and teacher_id are required")
		}
		return &classScope{ClassName: className, TeacherID: uint(teacherID)}, nil
	}

	teacher, err := currentTeacher(user)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "No teacher profile for this account")
	}

	if className == "" {
		if len(teacher.Classes) == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Teacher has no assigned classes")
		}
		className = teacher.Classes[0]
	} else if !teacherHasClass(teacher, className) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Class is not assigned to this teacher")
	}

	return &classScope{ClassName: className, TeacherID: teacher.ID}, nil
}

func currentTeacher(user *models.User) (*models.Teacher, error) {
	return repositories.NewTeacherRepository(database.DB).GetByUserID(user.ID)
}

func teacherHasClass(teacher *models.Teacher, className string) bool {
	for _, c := range teacher.Classes {
		if c == className {
			return true
		}
	}
	return false
}
