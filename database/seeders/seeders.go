package seeders

import (
	"log"

	"edutrack_go/database"
	"edutrack_go/models"
	"edutrack_go/repositories"
	"edutrack_go/utils"
)

// SeedAll runs all seeders
func SeedAll() {
	log.Println("Starting database seeding...")

	SeedAdmin()
	SeedTeachers()
	SeedStudents()

	log.Println("Database seeding completed successfully!")
}

// SeedAdmin creates the initial admin account.
func SeedAdmin() {
	var count int64
	database.DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("Admin already seeded, skipping...")
		return
	}

	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Email:    "admin@edutrack.local",
		Password: hashed,
		Role:     "admin",
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin:", err)
		return
	}
	log.Println("Seeded admin account admin@edutrack.local")
}

// SeedTeachers creates sample teachers with their login accounts.
func SeedTeachers() {
	var count int64
	database.DB.Model(&models.Teacher{}).Count(&count)
	if count > 0 {
		log.Println("Teachers already seeded, skipping...")
		return
	}

	repo := repositories.NewTeacherRepository(database.DB)
	samples := []repositories.CreateTeacherInput{
		{
			FullName:   "Priya Sharma",
			Email:      "priya.sharma@edutrack.local",
			Password:   "teacher123",
			Department: "Mathematics",
			Subject:    "Algebra",
			Classes:    []string{"10A", "10B"},
		},
		{
			FullName:   "Rahul Verma",
			Email:      "rahul.verma@edutrack.local",
			Password:   "teacher123",
			Department: "Science",
			Subject:    "Physics",
			Classes:    []string{"9A"},
		},
	}

	for _, s := range samples {
		if _, err := repo.Create(s); err != nil {
			log.Println("Failed to seed teacher:", err)
		}
	}
	log.Printf("Seeded %d teachers", len(samples))
}

// SeedStudents creates a sample roster for the first seeded teacher.
func SeedStudents() {
	var count int64
	database.DB.Model(&models.Student{}).Count(&count)
	if count > 0 {
		log.Println("Students already seeded, skipping...")
		return
	}

	var teacher models.Teacher
	if err := database.DB.Order("teacher_id").First(&teacher).Error; err != nil {
		log.Println("No teachers found, skipping student seeding")
		return
	}

	repo := repositories.NewStudentRepository(database.DB)
	samples := []repositories.CreateStudentInput{
		{RollNo: "001", FullName: "Aarav Patel", Age: 15, ClassName: "10A", FatherName: "Suresh Patel", Phone: "9800000001", Email: "aarav@example.com", TeacherID: teacher.ID},
		{RollNo: "002", FullName: "Diya Singh", Age: 15, ClassName: "10A", FatherName: "Rajesh Singh", Phone: "9800000002", Email: "diya@example.com", TeacherID: teacher.ID},
		{RollNo: "003", FullName: "Kabir Mehta", Age: 16, ClassName: "10A", FatherName: "Anil Mehta", Phone: "9800000003", Email: "kabir@example.com", TeacherID: teacher.ID},
	}

	for _, s := range samples {
		if _, err := repo.Create(s); err != nil {
			log.Println("Failed to seed student:", err)
		}
	}
	log.Printf("Seeded %d students", len(samples))
}
