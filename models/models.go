package models

import (
	"time"

	"github.com/lib/pq"
)

// User model. Credentials are bcrypt hashes, never stored in clear.
type User struct {
	ID        uint      `json:"id" gorm:"column:user_id;primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:50;not null;default:'teacher'"` // admin, teacher
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:UserID"`
}

// Teacher model
type Teacher struct {
	ID         uint           `json:"id" gorm:"column:teacher_id;primaryKey"`
	Code       string         `json:"teacher_code" gorm:"column:teacher_code;size:10;not null;uniqueIndex"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	FullName   string         `json:"full_name" gorm:"size:200;not null"`
	Department string         `json:"department" gorm:"size:100"`
	Subject    string         `json:"subject" gorm:"size:100"`
	Classes    pq.StringArray `json:"classes" gorm:"type:text[]"`
	Status     string         `json:"status" gorm:"size:50;not null;default:'Active'"` // Active, Inactive
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Students []Student `json:"students,omitempty" gorm:"foreignKey:TeacherID"`
}

func (Teacher) TableName() string { return "teachers" }

// Student model. Roll numbers are unique within a class.
type Student struct {
	ID         uint      `json:"id" gorm:"column:student_id;primaryKey"`
	RollNo     string    `json:"roll_no" gorm:"size:20;not null;uniqueIndex:idx_students_class_roll,priority:2"`
	FullName   string    `json:"full_name" gorm:"size:200;not null"`
	Age        int       `json:"age"`
	ClassName  string    `json:"class_name" gorm:"size:50;not null;uniqueIndex:idx_students_class_roll,priority:1"`
	FatherName string    `json:"father_name" gorm:"size:200"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Email      string    `json:"email" gorm:"size:255"`
	Address    string    `json:"address" gorm:"size:500"`
	TeacherID  uint      `json:"teacher_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Teacher Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

// Attendance model. One row per (student, date); writes go through an upsert.
type Attendance struct {
	StudentID uint      `json:"student_id" gorm:"primaryKey;autoIncrement:false"`
	Date      time.Time `json:"attendance_date" gorm:"column:attendance_date;type:date;primaryKey"`
	Status    string    `json:"status" gorm:"size:20;not null"` // Present, Absent
	MarkedBy  uint      `json:"marked_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

func (Attendance) TableName() string { return "attendance" }

// Marks model. One row per student; each component is scored out of 100.
type Marks struct {
	StudentID uint      `json:"student_id" gorm:"primaryKey;autoIncrement:false"`
	Unit1     int       `json:"unit1"`
	Unit2     int       `json:"unit2"`
	Midterm   int       `json:"midterm"`
	Final     int       `json:"final" gorm:"column:final"`
	UpdatedBy uint      `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

func (Marks) TableName() string { return "marks" }

// Fee model. One row per (student, month, year). PaymentDate is set iff Paid.
type Fee struct {
	StudentID   uint       `json:"student_id" gorm:"primaryKey;autoIncrement:false"`
	Month       string     `json:"month" gorm:"size:20;primaryKey"`
	Year        int        `json:"year" gorm:"primaryKey;autoIncrement:false"`
	Amount      float64    `json:"amount" gorm:"not null"`
	Status      string     `json:"status" gorm:"size:20;not null;default:'Pending'"` // Pending, Paid
	PaymentDate *time.Time `json:"payment_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

func (Fee) TableName() string { return "fees" }

// StudyMaterial model
type StudyMaterial struct {
	ID          uint      `json:"id" gorm:"column:material_id;primaryKey"`
	TeacherID   uint      `json:"teacher_id" gorm:"not null;index"`
	ClassName   string    `json:"class_name" gorm:"size:50;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Type        string    `json:"material_type" gorm:"column:material_type;size:50;not null"` // notes, assignment, previous_paper, reference
	FileURL     string    `json:"file_url" gorm:"size:500"`
	UploadDate  time.Time `json:"upload_date" gorm:"autoCreateTime"`

	Teacher Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

func (StudyMaterial) TableName() string { return "study_materials" }

// ActivityLog model for audit tracking
type ActivityLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id"`
	Action     string    `json:"action" gorm:"size:100;not null"`
	Resource   string    `json:"resource" gorm:"size:100;not null"`
	ResourceID uint      `json:"resource_id"`
	Details    string    `json:"details" gorm:"type:text"`
	IPAddress  string    `json:"ip_address" gorm:"size:45"`
	UserAgent  string    `json:"user_agent" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`
}
