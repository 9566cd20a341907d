package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/middleware"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	report, err := h.service.Create(caller, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report created successfully",
		"report":  dto.NewReportResponse(report, 0, 0, caller),
	})
}

// List serves the public feed. With ?q= the ordering is relevance,
// otherwise newest first; either way only public reports appear and
// anonymous authors are masked.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	reports, likeCounts, err := h.service.List(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(projectReports(reports, likeCounts, caller))
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	report, likes, flags, err := h.service.Get(id, caller)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.NewReportResponse(report, likes, flags, caller))
}

func (h *ReportHandler) Update(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	report, err := h.service.Update(id, caller, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Report updated successfully",
		"report":  dto.NewReportResponse(report, h.service.LikeCount(id), 0, caller),
	})
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.service.Delete(id, caller); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Report deleted"})
}

func (h *ReportHandler) ToggleLike(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	resp, err := h.service.ToggleLike(id, caller)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ReportHandler) Flag(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	resp, err := h.service.Flag(id, caller)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// ModerationQueue serves the role-scoped private-report listing. The
// caller's own role decides the scope; guests get an empty list.
func (h *ReportHandler) ModerationQueue(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	reports, err := h.service.ModerationQueue(caller)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(projectReports(reports, nil, caller))
}

func projectReports(reports []models.Report, likeCounts map[uuid.UUID]int64, caller authz.Caller) []dto.ReportResponse {
	out := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		out = append(out, dto.NewReportResponse(r, likeCounts[r.ID], 0, caller))
	}
	return out
}
