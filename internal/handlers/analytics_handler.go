package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	service *services.AnalyticsService
}

func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// ByUniversity serves the per-university report counts for the landing
// dashboard.
func (h *AnalyticsHandler) ByUniversity(c *fiber.Ctx) error {
	counts, err := h.service.ReportsByUniversity()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(counts)
}

func (h *AnalyticsHandler) ByMonth(c *fiber.Ctx) error {
	counts, err := h.service.ReportsByMonth()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(counts)
}
