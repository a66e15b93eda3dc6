package handlers

import (
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/models"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", middleware.AuthRequired(h.authService), middleware.RoleRequired("user"), h.HandleListUsers)
	userRoutes.Delete("/:id", middleware.AuthRequired(h.authService), middleware.RoleRequired("admin"), h.HandleDeleteUser)
}

// CreateUserRequest represents the request body for registration.
type CreateUserRequest struct {
	Username string       `json:"username" validate:"required,min=3,max=100"`
	Password string       `json:"password" validate:"required,min=6"`
	Roles    models.Roles `json:"roles"`
}

// HandleCreateUser registers a new user and returns it together with the
// provisioned bucket name.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
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

	user, bucket, err := h.userService.CreateUser(c.Context(), req.Username, req.Password, req.Roles)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Username, err)
		if isClientFault(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		*models.User
		Bucket string `json:"bucket"`
	}{user, bucket})
}

// HandleListUsers returns all users without secret material.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(users)
}

// HandleDeleteUser removes a user by id. Admin only.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.userService.DeleteUser(id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
