package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/middleware"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler groups the admin-only surface: university curation and
// flag review. Route registration guards it with AdminRequired.
type AdminHandler struct {
	universities *services.UniversityService
	reports      *services.ReportService
}

func NewAdminHandler(universities *services.UniversityService, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{universities: universities, reports: reports}
}

func (h *AdminHandler) PendingUniversities(c *fiber.Ctx) error {
	universities, err := h.universities.ListPending()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(universities)
}

func (h *AdminHandler) ApproveUniversity(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	university, err := h.universities.Approve(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "University approved",
		"university": university,
	})
}

// MergeUniversities folds the duplicate entry into the canonical one,
// moving reports and member affiliations across before removing it.
func (h *AdminHandler) MergeUniversities(c *fiber.Ctx) error {
	var req dto.MergeUniversitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	badID, err := uuid.Parse(req.BadID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid badId",
		})
	}
	goodID, err := uuid.Parse(req.GoodID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goodId",
		})
	}

	if err := h.universities.Merge(badID, goodID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Universities merged"})
}

func (h *AdminHandler) DeleteUniversity(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.universities.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "University deleted"})
}

// FlaggedReports lists every report carrying at least one flag, most
// flagged first, for admin review.
func (h *AdminHandler) FlaggedReports(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	reports, flagCounts, err := h.reports.FlaggedReports(caller)
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.FlaggedReportResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		out = append(out, dto.FlaggedReportResponse{
			ID:    r.ID,
			Title: r.Title,
			Body:  r.Body,
			Author: dto.AuthorRef{
				ID:         r.Author.ID,
				Name:       r.Author.Name,
				IsStudent:  r.Author.IsStudent,
				Profession: r.Author.Profession,
			},
			FlagCount: flagCounts[r.ID],
			CreatedAt: r.CreatedAt,
		})
	}
	return c.JSON(out)
}

func (h *AdminHandler) DismissFlags(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.reports.DismissFlags(id, caller); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Flags dismissed"})
}
