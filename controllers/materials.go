package controllers

import (
	"strconv"
	"strings"

	"edutrack_go/config"
	"edutrack_go/database"
	"edutrack_go/middleware"
	"edutrack_go/repositories"
	"edutrack_go/storage"
	"edutrack_go/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MaterialController struct {
	materials *repositories.MaterialRepository
}

func NewMaterialController() *MaterialController {
	return &MaterialController{materials: repositories.NewMaterialRepository(database.DB)}
}

// GetMaterials returns the class materials, newest upload first.
func (mc *MaterialController) GetMaterials(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	materials, err := mc.materials.List(scope.TeacherID, scope.ClassName)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"materials": materials,
		"total":     len(materials),
	})
}

// CreateMaterial adds a study material, with an optional file attachment
// uploaded to S3 from the multipart form.
func (mc *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	scope, err := resolveClassScope(c)
	if err != nil {
		return err
	}

	req := repositories.CreateMaterialInput{
		TeacherID:   scope.TeacherID,
		ClassName:   scope.ClassName,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Type:        c.FormValue("material_type", "notes"),
	}

	if file, ferr := c.FormFile("file"); ferr == nil && file != nil {
		allowed := strings.Split(config.AppConfig.AllowedExtensions, ",")
		if !utils.IsValidFileExtension(file.Filename, allowed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File type not allowed",
			})
		}

		storageService, serr := storage.NewStorageService()
		if serr != nil {
			logrus.WithError(serr).Error("Failed to initialize storage service")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "File storage unavailable",
			})
		}

		url, uerr := storageService.UploadMaterial(file, scope.TeacherID)
		if uerr != nil {
			logrus.WithError(uerr).Error("Material upload failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload file",
			})
		}
		req.FileURL = url
	}

	material, err := mc.materials.Create(req)
	if err != nil {
		return respondRepoError(c, err)
	}

	middleware.LogActivity(c, "CREATE", "study_materials", material.ID, fiber.Map{
		"title": material.Title,
		"type":  material.Type,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Material added successfully",
		"material": material,
	})
}

// DeleteMaterial removes a material row and its S3 attachment, if any.
func (mc *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid material ID",
		})
	}

	material, err := mc.materials.GetByID(uint(id))
	if err != nil {
		return respondRepoError(c, err)
	}

	if err := mc.materials.Delete(uint(id)); err != nil {
		return respondRepoError(c, err)
	}

	if material.FileURL != "" {
		if storageService, serr := storage.NewStorageService(); serr == nil {
			if derr := storageService.DeleteObject(material.FileURL); derr != nil {
				logrus.WithError(derr).Warn("Failed to delete material file from S3")
			}
		}
	}

	middleware.LogActivity(c, "DELETE", "study_materials", uint(id), nil)

	return c.JSON(fiber.Map{
		"message": "Material deleted successfully",
	})
}
