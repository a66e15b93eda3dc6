package handlers

import (
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/models"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	postService *services.PostService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, authService *services.AuthService) *PostHandler {
	return &PostHandler{
		postService: postService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the post routes.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Post("/", middleware.AuthRequired(h.authService), h.HandleCreatePost)
	postRoutes.Get("/", h.HandleListPosts)
	postRoutes.Delete("/:id", middleware.AuthRequired(h.authService), h.HandleDeletePost)
}

// CreatePostRequest represents the request body for post creation. The owner
// comes from the authenticated identity, never from the body.
type CreatePostRequest struct {
	Title    string      `json:"title" validate:"required,max=200"`
	Body     string      `json:"body" validate:"required"`
	Tags     models.Tags `json:"tags"`
	Rating   float64     `json:"rating" validate:"gte=0,lte=5"`
	Location string      `json:"location"`
	Image    string      `json:"image"`
}

// HandleCreatePost creates a post for the authenticated user.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req CreatePostRequest
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
	post, err := h.postService.CreatePost(services.CreatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
		Rating:   req.Rating,
		Location: req.Location,
		Image:    req.Image,
		UserID:   identity.ID,
	})
	if err != nil {
		log.Printf("Error creating post: %v", err)
		if isClientFault(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleListPosts returns all posts with their author's username.
func (h *PostHandler) HandleListPosts(c *fiber.Ctx) error {
	posts, err := h.postService.ListPosts()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(posts)
}

// HandleDeletePost removes a post by id.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.postService.DeletePost(id); err != nil {
		log.Printf("Error deleting post %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
