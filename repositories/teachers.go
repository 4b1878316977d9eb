package repositories

import (
	"fmt"
	"strings"

	"edutrack_go/models"
	"edutrack_go/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeacherRepository handles teacher records and their linked login accounts.
type TeacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// TeacherFilter narrows List results. Search matches name, code and subject
// case-insensitively; Department is an exact match.
type TeacherFilter struct {
	Search     string
	Department string
	Status     string
}

// CreateTeacherInput carries the fields for a new teacher and their account.
type CreateTeacherInput struct {
	FullName   string   `json:"full_name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	Department string   `json:"department" validate:"required"`
	Subject    string   `json:"subject"`
	Classes    []string `json:"classes"`
}

// List returns teachers ordered by teacher code, with their user preloaded.
func (r *TeacherRepository) List(filter TeacherFilter) ([]models.Teacher, error) {
	query := r.db.Model(&models.Teacher{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(teacher_code) LIKE ? OR LOWER(subject) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var teachers []models.Teacher
	if err := query.Preload("User").Order("teacher_code").Find(&teachers).Error; err != nil {
		return nil, wrapDBError("list teachers", err)
	}
	return teachers, nil
}

// GetByID returns a single teacher with the linked user.
func (r *TeacherRepository) GetByID(id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.Preload("User").First(&teacher, id).Error; err != nil {
		return nil, wrapDBError("get teacher", err)
	}
	return &teacher, nil
}

// GetByUserID resolves the teacher profile for a login account.
func (r *TeacherRepository) GetByUserID(userID uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.Where("user_id = ?", userID).First(&teacher).Error; err != nil {
		return nil, wrapDBError("get teacher by user", err)
	}
	return &teacher, nil
}

// Create inserts the login account and the teacher profile in one transaction,
// so a failed teacher insert never leaves an orphaned user row. The teacher
// code is derived from the current row count inside the same transaction; the
// unique index on teacher_code turns a concurrent race into a PersistenceError
// instead of a silent duplicate.
func (r *TeacherRepository) Create(in CreateTeacherInput) (*models.Teacher, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, &ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, &PersistenceError{Op: "hash password", Err: err}
	}

	var teacher models.Teacher
	err = r.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    strings.ToLower(strings.TrimSpace(in.Email)),
			Password: hashed,
			Role:     "teacher",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Teacher{}).Count(&count).Error; err != nil {
			return err
		}

		teacher = models.Teacher{
			Code:       FormatTeacherCode(count + 1),
			UserID:     user.ID,
			FullName:   strings.TrimSpace(in.FullName),
			Department: in.Department,
			Subject:    in.Subject,
			Classes:    pq.StringArray(utils.NormalizeClasses(in.Classes)),
			Status:     "Active",
		}
		return tx.Create(&teacher).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create teacher", Err: err}
	}

	if err := r.db.Preload("User").First(&teacher, teacher.ID).Error; err != nil {
		return nil, wrapDBError("reload teacher", err)
	}
	return &teacher, nil
}

// UpdateStatus toggles a teacher between Active and Inactive.
func (r *TeacherRepository) UpdateStatus(id uint, status string) error {
	if status != "Active" && status != "Inactive" {
		return &ValidationError{Field: "status", Reason: "must be Active or Inactive"}
	}
	res := r.db.Model(&models.Teacher{}).Where("teacher_id = ?", id).Update("status", status)
	if res.Error != nil {
		return wrapDBError("update teacher status", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of teachers.
func (r *TeacherRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Teacher{}).Count(&count).Error; err != nil {
		return 0, wrapDBError("count teachers", err)
	}
	return count, nil
}

// CountActive returns the number of teachers with status Active.
func (r *TeacherRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Teacher{}).Where("status = ?", "Active").Count(&count).Error; err != nil {
		return 0, wrapDBError("count active teachers", err)
	}
	return count, nil
}

// FormatTeacherCode renders the zero-padded sequential code, e.g. T007.
func FormatTeacherCode(seq int64) string {
	return fmt.Sprintf("T%03d", seq)
}
