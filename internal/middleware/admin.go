package middleware

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates admin-only routes. It assumes JWTProtected ran
// first; the role comes from the verified token claims.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := Caller(c)
		if !caller.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if caller.Role != authz.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}

// ModOrAdminRequired gates routes open to moderators and admins.
func ModOrAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := Caller(c)
		if !caller.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if caller.Role != authz.RoleAdmin && caller.Role != authz.RoleModerator {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin or moderator access required",
			})
		}
		return c.Next()
	}
}
