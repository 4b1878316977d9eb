package controllers

import (
	"errors"

	"edutrack_go/repositories"

	"github.com/gofiber/fiber/v2"
)

// respondRepoError maps repository errors to HTTP responses.
func respondRepoError(c *fiber.Ctx, err error) error {
	var validationErr *repositories.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
		})
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	}

	if repositories.IsDuplicateKey(err) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Record already exists",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Database operation failed",
	})
}
