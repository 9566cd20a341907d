package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/middleware"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CaseFileHandler struct {
	service *services.CaseFileService
}

func NewCaseFileHandler(service *services.CaseFileService) *CaseFileHandler {
	return &CaseFileHandler{service: service}
}

func (h *CaseFileHandler) List(c *fiber.Ctx) error {
	files, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(files)
}

func (h *CaseFileHandler) Get(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	file, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(file)
}

func (h *CaseFileHandler) Create(c *fiber.Ctx) error {
	caller := middleware.Caller(c)

	var req dto.CaseFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	file, err := h.service.Create(caller, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

func (h *CaseFileHandler) Update(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	var req dto.CaseFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	file, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(file)
}

func (h *CaseFileHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Case file deleted"})
}
