package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// uploadField is the multipart form field carrying the image.
const uploadField = "product"

// UploadHandler stores product images on disk and hands back the URL the
// storefront embeds in catalog entries. Files are served statically under
// /images (wired in main).
type UploadHandler struct {
	uploadDir string
	baseURL   string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadDir, baseURL string) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload stores one uploaded image under a timestamped name and
// returns its public URL.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile(uploadField)
	if err != nil {
		log.Printf("Error reading upload form file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": 0,
			"error":   fmt.Sprintf("multipart field '%s' is required", uploadField),
		})
	}

	filename := fmt.Sprintf("%s_%d%s", uploadField, time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		log.Printf("Error saving uploaded file %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": 0,
			"error":   "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", h.baseURL, filename),
		"message":   "File uploaded successfully",
	})
}
