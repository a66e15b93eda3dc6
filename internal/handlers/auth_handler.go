package handlers

import (
	"errors"
	"log"

	"platefeed/internal/middleware"
	"platefeed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles login and the token-guarded profile/admin routes.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/login", h.HandleLogin)
	router.Get("/profile", middleware.AuthRequired(h.authService), h.HandleProfile)
	router.Get("/admin", middleware.AuthRequired(h.authService), middleware.RoleRequired("admin"), h.HandleAdmin)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a token. Bad credentials map to
// 401; anything unexpected maps to 500.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username and password are required",
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

// HandleProfile returns the authenticated identity.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"user": middleware.IdentityFromContext(c)})
}

// HandleAdmin is the admin-only greeting route.
func (h *AuthHandler) HandleAdmin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome Admin",
		"user":    middleware.IdentityFromContext(c),
	})
}
