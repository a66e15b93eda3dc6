package handlers

import (
	"fmt"
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uploadURLTTLSeconds is how long a presigned upload URL stays valid.
const uploadURLTTLSeconds = 900

// UploadHandler hands out presigned upload URLs into the caller's own bucket.
type UploadHandler struct {
	blobs       services.BlobStore
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(blobs services.BlobStore, authService *services.AuthService) *UploadHandler {
	return &UploadHandler{
		blobs:       blobs,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the upload routes.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/uploads", middleware.AuthRequired(h.authService), h.HandlePresignUpload)
}

// PresignUploadRequest represents the request body for an upload URL.
type PresignUploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

// HandlePresignUpload returns a presigned PUT URL for an object in the
// authenticated user's bucket, plus the public URL the object will have.
func (h *UploadHandler) HandlePresignUpload(c *fiber.Ctx) error {
	var req PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	identity := middleware.IdentityFromContext(c)
	bucket := services.BucketName(identity.ID)
	key := fmt.Sprintf("posts/%s-%s", uuid.New().String(), req.FileName)

	uploadURL, err := h.blobs.PresignUpload(c.Context(), bucket, key, req.ContentType)
	if err != nil {
		log.Printf("Error presigning upload for user %s: %v", identity.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create upload URL",
		})
	}

	return c.JSON(fiber.Map{
		"upload_url": uploadURL,
		"object_url": h.blobs.ObjectURL(bucket, key),
		"key":        key,
		"expires_in": uploadURLTTLSeconds,
	})
}
