package handlers

import (
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/database"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	status := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "down"
		status = "degraded"
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
