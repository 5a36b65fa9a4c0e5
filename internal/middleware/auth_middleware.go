package middleware

import (
	"strings"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		tokenString := parts[1]

		// Validate token
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_name", claims.Username)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

// RequireAdmin checks if the authenticated user has the admin role
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role != model.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: admin access required"})
		}
		return c.Next()
	}
}
