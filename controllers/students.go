package controllers

import (
	"strconv"

	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"
	"edutrack_go/utils"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	students *repositories.StudentRepository
}

func NewStudentController() *StudentController {
	return &StudentController{students: repositories.NewStudentRepository(database.DB)}
}

// GetStudents returns the class roster ordered by roll number.
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	students, err := sc.students.List(repositories.StudentFilter{
		ClassName: scope.ClassName,
		TeacherID: scope.TeacherID,
		Search:    c.Query("search"),
	})
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"students": students,
		"total":    len(students),
	})
}

// GetStudent returns a specific student by ID
func (sc *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID",
		})
	}

	student, err := sc.students.GetByID(uint(id))
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"student": student,
	})
}

// CreateStudent adds a student to the caller's class.
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req repositories.CreateStudentInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Teachers always create into their own scope
	user, err := middleware.GetCurrentUser(c)
	if err == nil && user.Role == "teacher" {
		teacher, terr := currentTeacher(user)
		if terr != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "No teacher profile for this account",
			})
		}
		req.TeacherID = teacher.ID
		if req.ClassName != "" && !teacherHasClass(teacher, req.ClassName) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Class is not assigned to this teacher",
			})
		}
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	student, err := sc.students.Create(req)
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "CREATE", "students", student.ID, fiber.Map{
		"roll_no":    student.RollNo,
		"class_name": student.ClassName,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

// UpdateStudent applies partial changes to a student record.
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID",
		})
	}

	var req struct {
		FullName   string `json:"full_name"`
		Age        int    `json:"age"`
		FatherName string `json:"father_name"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Address    string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	fields := map[string]interface{}{}
	if req.FullName != "" {
		fields["full_name"] = req.FullName
	}
	if req.Age != 0 {
		fields["age"] = req.Age
	}
	if req.FatherName != "" {
		fields["father_name"] = req.FatherName
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}

	student, err := sc.students.Update(uint(id), fields)
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "UPDATE", "students", student.ID, fields)

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}
