package services

import (
	"math"
	"time"

	"edutrack_go/repositories"

	"gorm.io/gorm"
)

// StatsService computes dashboard aggregates by composing repository queries.
// Every stat reports 0 when no qualifying rows exist.
type StatsService struct {
	teachers   *repositories.TeacherRepository
	students   *repositories.StudentRepository
	attendance *repositories.AttendanceRepository
	marks      *repositories.MarksRepository
	fees       *repositories.FeeRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		teachers:   repositories.NewTeacherRepository(db),
		students:   repositories.NewStudentRepository(db),
		attendance: repositories.NewAttendanceRepository(db),
		marks:      repositories.NewMarksRepository(db),
		fees:       repositories.NewFeeRepository(db),
	}
}

// AdminStats summarizes the teacher roster for the admin dashboard.
type AdminStats struct {
	TotalTeachers  int64 `json:"total_teachers"`
	ActiveTeachers int64 `json:"active_teachers"`
}

// ClassStats summarizes one teacher's class.
type ClassStats struct {
	TotalStudents int64 `json:"total_students"`
	PresentToday  int64 `json:"present_today"`
	AverageMarks  int   `json:"average_marks"`
	FeePending    int64 `json:"fee_pending"`
}

// Admin returns teacher counts.
func (s *StatsService) Admin() (*AdminStats, error) {
	total, err := s.teachers.Count()
	if err != nil {
		return nil, err
	}
	active, err := s.teachers.CountActive()
	if err != nil {
		return nil, err
	}
	return &AdminStats{TotalTeachers: total, ActiveTeachers: active}, nil
}

// Class returns the per-class dashboard numbers for a teacher. AverageMarks
// covers only students with a marks row and is truncated to a whole percent.
func (s *StatsService) Class(className string, teacherID uint) (*ClassStats, error) {
	total, err := s.students.CountByClass(className, teacherID)
	if err != nil {
		return nil, err
	}

	present, err := s.attendance.CountPresent(className, teacherID, time.Now())
	if err != nil {
		return nil, err
	}

	avg, err := s.marks.ClassAverage(className, teacherID)
	if err != nil {
		return nil, err
	}

	pending, err := s.fees.CountPending(className, teacherID)
	if err != nil {
		return nil, err
	}

	return &ClassStats{
		TotalStudents: total,
		PresentToday:  present,
		AverageMarks:  TruncateAverage(avg),
		FeePending:    pending,
	}, nil
}

// TruncateAverage converts a raw average to the whole percent shown on the
// dashboard. NaN (possible only from a broken driver) collapses to 0.
func TruncateAverage(avg float64) int {
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0
	}
	return int(avg)
}
