package routes

import (
	"edutrack_go/controllers"
	"edutrack_go/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App) {
	authController := controllers.NewAuthController()
	teacherController := controllers.NewTeacherController()
	studentController := controllers.NewStudentController()
	attendanceController := controllers.NewAttendanceController()
	marksController := controllers.NewMarksController()
	feeController := controllers.NewFeeController()
	materialController := controllers.NewMaterialController()
	statsController := controllers.NewStatsController()
	healthController := controllers.NewHealthController()

	// Health check
	app.Get("/health", healthController.Health)

	// API group
	api := app.Group("/api")

	// Authentication routes (no middleware)
	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)

	// Protected routes (require authentication)
	protected := api.Group("/", middleware.JWTMiddleware())

	protected.Get("/profile", authController.GetProfile)
	protected.Post("/auth/logout", authController.Logout)

	// Teacher management (admin only for writes)
	teachers := protected.Group("/teachers")
	teachers.Get("/", teacherController.GetTeachers)
	teachers.Get("/departments", teacherController.GetDepartments)
	teachers.Get("/:id", teacherController.GetTeacher)
	teachers.Post("/", middleware.RequireAdmin(), teacherController.CreateTeacher)
	teachers.Patch("/:id/status", middleware.RequireAdmin(), teacherController.UpdateTeacherStatus)

	// Student roster
	students := protected.Group("/students", middleware.RequireTeacherOrAdmin())
	students.Get("/", studentController.GetStudents)
	students.Get("/:id", studentController.GetStudent)
	students.Post("/", studentController.CreateStudent)
	students.Put("/:id", studentController.UpdateStudent)

	// Attendance
	attendance := protected.Group("/attendance", middleware.RequireTeacherOrAdmin())
	attendance.Get("/", attendanceController.GetRoster)
	attendance.Post("/", attendanceController.MarkAttendance)
	attendance.Post("/mark-all-present", attendanceController.MarkAllPresent)

	// Marks
	marks := protected.Group("/marks", middleware.RequireTeacherOrAdmin())
	marks.Get("/", marksController.GetMarks)
	marks.Put("/", marksController.UpsertMarks)
	marks.Put("/bulk", marksController.UpsertMarksBulk)

	// Fees
	fees := protected.Group("/fees", middleware.RequireTeacherOrAdmin())
	fees.Get("/", feeController.GetFees)
	fees.Patch("/:student_id/toggle", feeController.ToggleFeeStatus)

	// Study materials
	materials := protected.Group("/materials", middleware.RequireTeacherOrAdmin())
	materials.Get("/", materialController.GetMaterials)
	materials.Post("/", materialController.CreateMaterial)
	materials.Delete("/:id", materialController.DeleteMaterial)

	// Dashboard stats and reports
	stats := protected.Group("/stats")
	stats.Get("/admin", middleware.RequireAdmin(), statsController.GetAdminStats)
	stats.Get("/class", middleware.RequireTeacherOrAdmin(), statsController.GetClassStats)

	reports := protected.Group("/reports", middleware.RequireTeacherOrAdmin())
	reports.Get("/marks.xlsx", statsController.ExportMarksReport)
}
