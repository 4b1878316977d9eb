package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"
	"edutrack_go/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	auth     *services.AuthService
	teachers *repositories.TeacherRepository
}

func NewAuthController() *AuthController {
	return &AuthController{
		auth:     services.NewAuthService(database.DB),
		teachers: repositories.NewTeacherRepository(database.DB),
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and returns a JWT token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := ac.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		return respondRepoError(c, err)
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	response := fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	}

	// Teachers carry their profile so the client can scope class views
	if user.Role == "teacher" {
		if teacher, err := ac.teachers.GetByUserID(user.ID); err == nil {
			response["teacher"] = fiber.Map{
				"id":           teacher.ID,
				"teacher_code": teacher.Code,
				"full_name":    teacher.FullName,
				"classes":      teacher.Classes,
			}
		}
	}

	middleware.LogActivity(c, "LOGIN", "auth", user.ID, fiber.Map{
		"email": user.Email,
		"role":  user.Role,
	})

	return c.JSON(response)
}

// Logout invalidates the current JWT by storing it in Redis blacklist for 24 hours
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing authorization header"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid authorization header format"})
	}

	if rc := database.GetRedisClient(); rc != nil {
		key := "blacklist:jwt:" + tokenString
		if err := rc.Set(context.Background(), key, "1", 24*time.Hour).Err(); err != nil {
			middleware.LogActivity(c, "LOGOUT", "auth", 0, fiber.Map{"error": err.Error()})
		}
	}

	if user, err := middleware.GetCurrentUser(c); err == nil {
		middleware.LogActivity(c, "LOGOUT", "auth", user.ID, fiber.Map{"email": user.Email})
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// GetProfile returns the current user's profile
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	response := fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	}

	if user.Role == "teacher" {
		if teacher, err := ac.teachers.GetByUserID(user.ID); err == nil {
			response["teacher"] = teacher
		}
	}

	return c.JSON(response)
}
