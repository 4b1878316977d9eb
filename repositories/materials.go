package repositories

import (
	"strings"

	"edutrack_go/models"

	"gorm.io/gorm"
)

// MaterialRepository handles study materials shared with a class.
type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// CreateMaterialInput carries the fields for a new study material.
type CreateMaterialInput struct {
	TeacherID   uint   `json:"teacher_id" validate:"required"`
	ClassName   string `json:"class_name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"material_type" validate:"required"`
	FileURL     string `json:"file_url"`
}

var materialTypes = map[string]bool{
	"notes":          true,
	"assignment":     true,
	"previous_paper": true,
	"reference":      true,
}

// List returns a teacher's materials for a class, newest upload first.
func (r *MaterialRepository) List(teacherID uint, className string) ([]models.StudyMaterial, error) {
	var materials []models.StudyMaterial
	err := r.db.Where("teacher_id = ? AND class_name = ?", teacherID, className).
		Order("upload_date DESC").
		Find(&materials).Error
	if err != nil {
		return nil, wrapDBError("list materials", err)
	}
	return materials, nil
}

// Create inserts a new study material.
func (r *MaterialRepository) Create(in CreateMaterialInput) (*models.StudyMaterial, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.TeacherID == 0 {
		return nil, &ValidationError{Field: "teacher_id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.ClassName) == "" {
		return nil, &ValidationError{Field: "class_name", Reason: "must not be empty"}
	}
	if !materialTypes[in.Type] {
		return nil, &ValidationError{Field: "material_type", Reason: "must be one of notes, assignment, previous_paper, reference"}
	}

	material := models.StudyMaterial{
		TeacherID:   in.TeacherID,
		ClassName:   in.ClassName,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Type:        in.Type,
		FileURL:     in.FileURL,
	}
	if err := r.db.Create(&material).Error; err != nil {
		return nil, &PersistenceError{Op: "create material", Err: err}
	}
	return &material, nil
}

func (r *MaterialRepository) GetByID(id uint) (*models.StudyMaterial, error) {
	var material models.StudyMaterial
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, wrapDBError("get material", err)
	}
	return &material, nil
}

// Delete removes a material row. The only hard delete in the system.
func (r *MaterialRepository) Delete(id uint) error {
	res := r.db.Delete(&models.StudyMaterial{}, id)
	if res.Error != nil {
		return wrapDBError("delete material", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
