package middleware

import (
	"log"
	"strings"

	"platefeed/internal/services"

	"github.com/gofiber/fiber/v2"
)

// identityKey is where AuthRequired stores the resolved identity in the
// request context.
const identityKey = "identity"

// AuthRequired is a Fiber middleware that checks for a valid bearer token.
// Missing, malformed, invalid and expired tokens all yield the same 401 so
// the response does not leak which check failed.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or invalid token",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or invalid token",
			})
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("[AUTH MIDDLEWARE] Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RoleRequired allows the request through when the authenticated identity
// holds at least one of the given roles. It must run after AuthRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or invalid token",
			})
		}
		for _, role := range roles {
			if identity.Roles.Contains(role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: insufficient role",
		})
	}
}

// IdentityFromContext returns the identity attached by AuthRequired, or nil.
func IdentityFromContext(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}
