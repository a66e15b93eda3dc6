package handlers

import (
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	commentService *services.CommentService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService, authService *services.AuthService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the comment routes.
func (h *CommentHandler) RegisterRoutes(router fiber.Router) {
	commentRoutes := router.Group("/comments")
	commentRoutes.Post("/", middleware.AuthRequired(h.authService), h.HandleCreateComment)
	commentRoutes.Get("/", h.HandleListComments)
	commentRoutes.Delete("/:post_id", middleware.AuthRequired(h.authService), h.HandleDeleteComment)
}

// CreateCommentRequest represents the request body for commenting on a post.
type CreateCommentRequest struct {
	PostID  string `json:"post_id" validate:"required"`
	Message string `json:"message"`
}

// HandleCreateComment records a comment by the authenticated user.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	var req CreateCommentRequest
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
	comment, err := h.commentService.CreateComment(identity.ID, req.PostID, req.Message)
	if err != nil {
		log.Printf("Error creating comment: %v", err)
		if isClientFault(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleListComments returns all comments.
func (h *CommentHandler) HandleListComments(c *fiber.Ctx) error {
	comments, err := h.commentService.ListComments()
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(comments)
}

// HandleDeleteComment removes the authenticated user's comments on a post.
// The delete is keyed by the (user, post) pair, not by comment id.
func (h *CommentHandler) HandleDeleteComment(c *fiber.Ctx) error {
	postID := c.Params("post_id")
	identity := middleware.IdentityFromContext(c)
	if err := h.commentService.DeleteComment(identity.ID, postID); err != nil {
		log.Printf("Error deleting comment on post %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
