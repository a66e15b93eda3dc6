package handlers

import (
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LikeHandler handles HTTP requests for likes.
type LikeHandler struct {
	likeService *services.LikeService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService, authService *services.AuthService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the like routes.
func (h *LikeHandler) RegisterRoutes(router fiber.Router) {
	likeRoutes := router.Group("/likes")
	likeRoutes.Post("/", middleware.AuthRequired(h.authService), h.HandleAddLike)
	likeRoutes.Get("/", h.HandleListLikes)
	likeRoutes.Delete("/:post_id", middleware.AuthRequired(h.authService), h.HandleRemoveLike)
}

// AddLikeRequest represents the request body for liking a post.
type AddLikeRequest struct {
	PostID string `json:"post_id" validate:"required"`
}

// HandleAddLike records a like by the authenticated user.
func (h *LikeHandler) HandleAddLike(c *fiber.Ctx) error {
	var req AddLikeRequest
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
	like, err := h.likeService.AddLike(identity.ID, req.PostID)
	if err != nil {
		log.Printf("Error adding like: %v", err)
		if isClientFault(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// HandleListLikes returns all likes.
func (h *LikeHandler) HandleListLikes(c *fiber.Ctx) error {
	likes, err := h.likeService.ListLikes()
	if err != nil {
		log.Printf("Error listing likes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(likes)
}

// HandleRemoveLike removes the authenticated user's like on a post. Removing
// a like that does not exist still succeeds.
func (h *LikeHandler) HandleRemoveLike(c *fiber.Ctx) error {
	postID := c.Params("post_id")
	identity := middleware.IdentityFromContext(c)
	if err := h.likeService.RemoveLike(identity.ID, postID); err != nil {
		log.Printf("Error removing like on post %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "Like removed"})
}
