package services

import (
	"strings"

	"edutrack_go/models"
	"edutrack_go/repositories"
	"edutrack_go/utils"

	"gorm.io/gorm"
)

// AuthService validates credentials against the users table.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate resolves an email/password pair to the stored user. Any failure
// is ErrInvalidCredentials so callers cannot tell whether the email exists.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, repositories.ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, repositories.ErrInvalidCredentials
	}

	if err := utils.CheckPassword(password, user.Password); err != nil {
		return nil, repositories.ErrInvalidCredentials
	}

	return &user, nil
}

// CreateAdmin provisions an admin account, used by seeding.
func (s *AuthService) CreateAdmin(email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
		Role:     "admin",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, &repositories.PersistenceError{Op: "create admin", Err: err}
	}
	return &user, nil
}
