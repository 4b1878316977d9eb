package repositories

import (
	"strings"

	"edutrack_go/models"

	"gorm.io/gorm"
)

// StudentRepository handles the class rosters.
type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// StudentFilter narrows List results to one teacher's class. Search matches
// name and roll number case-insensitively.
type StudentFilter struct {
	ClassName string
	TeacherID uint
	Search    string
}

// CreateStudentInput carries the fields for a new roster entry.
type CreateStudentInput struct {
	RollNo     string `json:"roll_no" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Age        int    `json:"age" validate:"gte=0"`
	ClassName  string `json:"class_name" validate:"required"`
	FatherName string `json:"father_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	TeacherID  uint   `json:"teacher_id" validate:"required"`
}

// List returns students ordered by roll number.
func (r *StudentRepository) List(filter StudentFilter) ([]models.Student, error) {
	query := r.db.Model(&models.Student{})

	if filter.ClassName != "" {
		query = query.Where("class_name = ?", filter.ClassName)
	}
	if filter.TeacherID != 0 {
		query = query.Where("teacher_id = ?", filter.TeacherID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(roll_no) LIKE ?", pattern, pattern)
	}

	var students []models.Student
	if err := query.Order("roll_no").Find(&students).Error; err != nil {
		return nil, wrapDBError("list students", err)
	}
	return students, nil
}

// GetByID returns a single student.
func (r *StudentRepository) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, wrapDBError("get student", err)
	}
	return &student, nil
}

// GetByRollNo resolves a student by roll number within a class.
func (r *StudentRepository) GetByRollNo(className, rollNo string) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("class_name = ? AND roll_no = ?", className, rollNo).First(&student).Error; err != nil {
		return nil, wrapDBError("get student by roll no", err)
	}
	return &student, nil
}

// Create inserts a new student. Roll number uniqueness within the class is
// enforced by the composite index; violations surface as PersistenceError.
func (r *StudentRepository) Create(in CreateStudentInput) (*models.Student, error) {
	if strings.TrimSpace(in.RollNo) == "" {
		return nil, &ValidationError{Field: "roll_no", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, &ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.ClassName) == "" {
		return nil, &ValidationError{Field: "class_name", Reason: "must not be empty"}
	}
	if in.TeacherID == 0 {
		return nil, &ValidationError{Field: "teacher_id", Reason: "must not be empty"}
	}

	student := models.Student{
		RollNo:     strings.TrimSpace(in.RollNo),
		FullName:   strings.TrimSpace(in.FullName),
		Age:        in.Age,
		ClassName:  in.ClassName,
		FatherName: in.FatherName,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		TeacherID:  in.TeacherID,
	}
	if err := r.db.Create(&student).Error; err != nil {
		return nil, &PersistenceError{Op: "create student", Err: err}
	}
	return &student, nil
}

// Update applies partial field changes to a student record.
func (r *StudentRepository) Update(id uint, fields map[string]interface{}) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, wrapDBError("get student", err)
	}
	if err := r.db.Model(&student).Updates(fields).Error; err != nil {
		return nil, &PersistenceError{Op: "update student", Err: err}
	}
	return &student, nil
}

// CountByClass returns the roster size for a teacher's class.
func (r *StudentRepository) CountByClass(className string, teacherID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).
		Where("class_name = ? AND teacher_id = ?", className, teacherID).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBError("count students", err)
	}
	return count, nil
}
