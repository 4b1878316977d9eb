package repositories

import (
	"errors"
	"time"

	"edutrack_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeeRepository handles monthly fee rows, keyed by (student, month, year).
type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// FeeEntry is a student joined with their fee row for a billing period.
// Students without one report the default amount as Pending.
type FeeEntry struct {
	StudentID   uint       `json:"student_id"`
	RollNo      string     `json:"roll_no"`
	FullName    string     `json:"full_name"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date"`
}

// ListByClass returns the fee sheet for one billing period, ordered by roll
// number.
func (r *FeeRepository) ListByClass(className string, teacherID uint, month string, year int, defaultAmount float64) ([]FeeEntry, error) {
	var entries []FeeEntry
	err := r.db.Model(&models.Student{}).
		Select(`students.student_id, students.roll_no, students.full_name,
			COALESCE(fees.amount, ?) AS amount,
			COALESCE(fees.status, 'Pending') AS status,
			fees.payment_date`, defaultAmount).
		Joins("LEFT JOIN fees ON students.student_id = fees.student_id AND fees.month = ? AND fees.year = ?", month, year).
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Order("students.roll_no").
		Scan(&entries).Error
	if err != nil {
		return nil, wrapDBError("list fees", err)
	}
	return entries, nil
}

// Toggle flips a fee row between Pending and Paid. Moving to Paid stamps the
// payment date; moving back clears it. A student without a row for the period
// gets one created, starting from Pending so the first toggle yields Paid.
func (r *FeeRepository) Toggle(studentID uint, month string, year int, defaultAmount float64) (*models.Fee, error) {
	if studentID == 0 {
		return nil, &ValidationError{Field: "student_id", Reason: "must not be empty"}
	}
	if month == "" {
		return nil, &ValidationError{Field: "month", Reason: "must not be empty"}
	}

	var fee models.Fee
	err := r.db.Transaction(func(tx *gorm.DB) error {
		current := "Pending"
		var existing models.Fee
		findErr := tx.Where("student_id = ? AND month = ? AND year = ?", studentID, month, year).
			First(&existing).Error
		if findErr == nil {
			current = existing.Status
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		status, paymentDate := NextFeeStatus(current, time.Now())

		amount := defaultAmount
		if findErr == nil {
			amount = existing.Amount
		}

		fee = models.Fee{
			StudentID:   studentID,
			Month:       month,
			Year:        year,
			Amount:      amount,
			Status:      status,
			PaymentDate: paymentDate,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "payment_date", "updated_at"}),
		}).Create(&fee).Error
	})
	if err != nil {
		return nil, &PersistenceError{Op: "toggle fee status", Err: err}
	}
	return &fee, nil
}

// EnsurePending inserts a Pending fee row for every student that does not
// already have one for the period. Existing rows are left untouched, so the
// generator is safe to re-run.
func (r *FeeRepository) EnsurePending(month string, year int, amount float64) (int64, error) {
	res := r.db.Exec(`
		INSERT INTO fees (student_id, month, year, amount, status, created_at, updated_at)
		SELECT s.student_id, ?, ?, ?, 'Pending', NOW(), NOW()
		FROM students s
		ON CONFLICT (student_id, month, year) DO NOTHING`,
		month, year, amount)
	if res.Error != nil {
		return 0, &PersistenceError{Op: "generate pending fees", Err: res.Error}
	}
	return res.RowsAffected, nil
}

// CountPending returns the number of Pending fee rows for a teacher's class.
func (r *FeeRepository) CountPending(className string, teacherID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Fee{}).
		Joins("JOIN students ON fees.student_id = students.student_id").
		Where("students.class_name = ? AND students.teacher_id = ?", className, teacherID).
		Where("fees.status = ?", "Pending").
		Count(&count).Error
	if err != nil {
		return 0, wrapDBError("count pending fees", err)
	}
	return count, nil
}

// NextFeeStatus computes the flip for a toggle: Pending becomes Paid with the
// payment time stamped, Paid becomes Pending with the date cleared.
func NextFeeStatus(current string, now time.Time) (string, *time.Time) {
	if current == "Paid" {
		return "Pending", nil
	}
	return "Paid", &now
}
