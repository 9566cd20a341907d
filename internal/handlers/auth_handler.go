package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	if err := h.service.Register(&req); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
