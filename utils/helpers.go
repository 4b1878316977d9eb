package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a password with its hash
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateStruct runs the shared validator against a request DTO.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidRole checks if a role is valid
func IsValidRole(role string) bool {
	return role == "admin" || role == "teacher"
}

// NormalizeClasses trims each class name and drops empties, preserving order.
// A nil or empty input yields an empty slice, never nil.
func NormalizeClasses(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// SplitClasses parses a comma separated class list ("10A, 10B") into the
// normalized form used on teacher records.
func SplitClasses(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeClasses(strings.Split(raw, ","))
}

// IsValidFileExtension checks if file extension is allowed
func IsValidFileExtension(filename string, allowedExtensions []string) bool {
	if filename == "" {
		return false
	}

	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return false
	}

	ext := strings.ToLower(parts[len(parts)-1])

	for _, allowedExt := range allowedExtensions {
		if ext == strings.ToLower(allowedExt) {
			return true
		}
	}
	return false
}
