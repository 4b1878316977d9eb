package repositories

import (
	"time"

	"edutrack_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles daily attendance, keyed by (student, date).
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// RosterEntry is a student joined with today's attendance status. Students
// without a row for the date report Absent.
type RosterEntry struct {
	StudentID uint   `json:"student_id"`
	RollNo    string `json:"roll_no"`
	FullName  string `json:"full_name"`
	Status    string `json:"status"`
}

// AttendanceDay truncates t to date precision in UTC, matching the DATE column.
func AttendanceDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Roster lists a class with each student's status for the given date.
func (r *AttendanceRepository) Roster(className string, teacherID uint, date time.Time) ([]RosterEntry, error) {
	day := AttendanceDay(date)

	var entries []RosterEntry
	err := r.db.Model(&models.Student{}).
		Select("students.student_id, students.roll_no, students.full_name, COALESCE(attendance.status, 'Absent') AS status").
		Joins("LEFT JOIN attendance ON students.student_id = attendance.student_id AND attendance.attendance_date = ?", day).
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Order("students.roll_no").
		Scan(&entries).Error
	if err != nil {
		return nil, wrapDBError("load attendance roster", err)
	}
	return entries, nil
}

// Mark upserts one attendance row. Marking the same (student, date) twice
// keeps a single row carrying the latest status; last writer wins.
func (r *AttendanceRepository) Mark(studentID uint, date time.Time, status string, markedBy uint) error {
	if status != "Present" && status != "Absent" {
		return &ValidationError{Field: "status", Reason: "must be Present or Absent"}
	}
	if studentID == 0 {
		return &ValidationError{Field: "student_id", Reason: "must not be empty"}
	}

	row := models.Attendance{
		StudentID: studentID,
		Date:      AttendanceDay(date),
		Status:    status,
		MarkedBy:  markedBy,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return &PersistenceError{Op: "mark attendance", Err: err}
	}
	return nil
}

// MarkAllPresent marks every student of a class Present for the date in one
// statement, conflict rows updated in place.
func (r *AttendanceRepository) MarkAllPresent(className string, teacherID uint, date time.Time) (int64, error) {
	day := AttendanceDay(date)

	res := r.db.Exec(`
		INSERT INTO attendance (student_id, attendance_date, status, marked_by, created_at, updated_at)
		SELECT s.student_id, ?, 'Present', ?, NOW(), NOW()
		FROM students s
		WHERE s.class_name = ? AND s.teacher_id = ?
		ON CONFLICT (student_id, attendance_date)
		DO UPDATE SET status = 'Present', marked_by = EXCLUDED.marked_by, updated_at = NOW()`,
		day, teacherID, className, teacherID)
	if res.Error != nil {
		return 0, &PersistenceError{Op: "mark all present", Err: res.Error}
	}
	return res.RowsAffected, nil
}

// CountPresent returns how many students of a class are Present on the date.
func (r *AttendanceRepository) CountPresent(className string, teacherID uint, date time.Time) (int64, error) {
	day := AttendanceDay(date)

	var count int64
	err := r.db.Model(&models.Attendance{}).
		Joins("JOIN students ON attendance.student_id = students.student_id").
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Where("attendance.attendance_date = ? AND attendance.status = ?", day, "Present").
		Count(&count).Error
	if err != nil {
		return 0, wrapDBError("count present", err)
	}
	return count, nil
}
