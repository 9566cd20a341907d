package handlers

import (
	"errors"
	"log/slog"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail translates a service error into the HTTP response. Internal
// errors are logged with their cause and returned opaque; everything
// else carries its message to the client.
func fail(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	switch e.Kind {
	case apperr.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message, Field: e.Field,
		})
	case apperr.KindUnauthenticated:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message,
		})
	case apperr.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message,
		})
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message,
		})
	case apperr.KindConflict:
		// duplicate flags and name collisions surface as 400
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: e.Message,
		})
	default:
		slog.Error("internal error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}
}

// parseUUID reads a path parameter as a UUID, writing the 400 response
// itself on failure.
func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid " + param,
		})
		return uuid.Nil, false
	}
	return id, true
}
