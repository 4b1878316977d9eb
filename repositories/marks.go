package repositories

import (
	"edutrack_go/models"
	"edutrack_go/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarksRepository handles per-student marks, one row per student.
type MarksRepository struct {
	db *gorm.DB
}

func NewMarksRepository(db *gorm.DB) *MarksRepository {
	return &MarksRepository{db: db}
}

// MarksEntry is a student joined with their scores; students without a marks
// row report zeros for display but are excluded from averages.
type MarksEntry struct {
	StudentID uint   `json:"student_id"`
	RollNo    string `json:"roll_no"`
	FullName  string `json:"full_name"`
	Unit1     int    `json:"unit1"`
	Unit2     int    `json:"unit2"`
	Midterm   int    `json:"midterm"`
	Final     int    `json:"final"`
	Total     int    `json:"total"`
	Grade     string `json:"grade"`
}

// UpsertMarksInput carries one student's component scores, each 0-100.
type UpsertMarksInput struct {
	StudentID uint `json:"student_id" validate:"required"`
	Unit1     int  `json:"unit1" validate:"gte=0,lte=100"`
	Unit2     int  `json:"unit2" validate:"gte=0,lte=100"`
	Midterm   int  `json:"midterm" validate:"gte=0,lte=100"`
	Final     int  `json:"final" validate:"gte=0,lte=100"`
}

// ListByClass returns the marks sheet for a class, ordered by roll number,
// with totals and letter grades computed.
func (r *MarksRepository) ListByClass(className string, teacherID uint) ([]MarksEntry, error) {
	var entries []MarksEntry
	err := r.db.Model(&models.Student{}).
		Select(`students.student_id, students.roll_no, students.full_name,
			COALESCE(marks.unit1, 0) AS unit1, COALESCE(marks.unit2, 0) AS unit2,
			COALESCE(marks.midterm, 0) AS midterm, COALESCE(marks.final, 0) AS final`).
		Joins("LEFT JOIN marks ON students.student_id = marks.student_id").
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Order("students.roll_no").
		Scan(&entries).Error
	if err != nil {
		return nil, wrapDBError("list marks", err)
	}

	for i := range entries {
		e := &entries[i]
		e.Total = e.Unit1 + e.Unit2 + e.Midterm + e.Final
		e.Grade = utils.CalculateGrade(e.Total / 4)
	}
	return entries, nil
}

// Upsert writes one student's scores, keyed on student_id. Re-submitting
// replaces the previous row; last writer wins.
func (r *MarksRepository) Upsert(in UpsertMarksInput, updatedBy uint) error {
	if in.StudentID == 0 {
		return &ValidationError{Field: "student_id", Reason: "must not be empty"}
	}
	for _, score := range []struct {
		name  string
		value int
	}{
		{"unit1", in.Unit1}, {"unit2", in.Unit2}, {"midterm", in.Midterm}, {"final", in.Final},
	} {
		if score.value < 0 || score.value > 100 {
			return &ValidationError{Field: score.name, Reason: "must be between 0 and 100"}
		}
	}

	row := models.Marks{
		StudentID: in.StudentID,
		Unit1:     in.Unit1,
		Unit2:     in.Unit2,
		Midterm:   in.Midterm,
		Final:     in.Final,
		UpdatedBy: updatedBy,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"unit1", "unit2", "midterm", "final", "updated_by", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return &PersistenceError{Op: "upsert marks", Err: err}
	}
	return nil
}

// ClassAverage returns the mean of (unit1+unit2+midterm+final)/4 across
// students that have a marks row. Classes with no marks average to 0.
func (r *MarksRepository) ClassAverage(className string, teacherID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Marks{}).
		Select("AVG((marks.unit1 + marks.unit2 + marks.midterm + marks.final) / 4.0)").
		Joins("JOIN students ON marks.student_id = students.student_id").
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Scan(&avg).Error
	if err != nil {
		return 0, wrapDBError("average marks", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
