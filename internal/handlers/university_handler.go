package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UniversityHandler struct {
	service *services.UniversityService
}

func NewUniversityHandler(service *services.UniversityService) *UniversityHandler {
	return &UniversityHandler{service: service}
}

// List returns the approved universities for registration and report
// forms. Pending entries stay hidden until an admin approves them.
func (h *UniversityHandler) List(c *fiber.Ctx) error {
	universities, err := h.service.ListApproved()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(universities)
}

func (h *UniversityHandler) Get(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	university, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(university)
}

func (h *UniversityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	university, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(university)
}
