package handlers

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/middleware"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	reportID, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	comment, err := h.service.AddComment(reportID, caller, req.Body, req.Anonymous)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCommentResponse(comment, caller))
}

// ListForReport returns the report's comments newest first, with each
// comment's replies embedded oldest first.
func (h *CommentHandler) ListForReport(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	reportID, ok := parseUUID(c, "id")
	if !ok {
		return nil
	}

	comments, err := h.service.ListForReport(reportID, caller)
	if err != nil {
		return fail(c, err)
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.NewCommentResponse(&comments[i], caller))
	}
	return c.JSON(out)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	commentID, ok := parseUUID(c, "commentId")
	if !ok {
		return nil
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	comment, err := h.service.UpdateComment(commentID, caller, req.Body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCommentResponse(comment, caller))
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	commentID, ok := parseUUID(c, "commentId")
	if !ok {
		return nil
	}

	if err := h.service.DeleteComment(commentID, caller); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Comment deleted"})
}

func (h *CommentHandler) AddReply(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	commentID, ok := parseUUID(c, "commentId")
	if !ok {
		return nil
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	reply, err := h.service.AddReply(commentID, caller, req.Body, req.Anonymous)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewReplyResponse(reply, caller))
}

func (h *CommentHandler) UpdateReply(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	commentID, ok := parseUUID(c, "commentId")
	if !ok {
		return nil
	}
	replyID, ok := parseUUID(c, "replyId")
	if !ok {
		return nil
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request",
		})
	}

	reply, err := h.service.UpdateReply(commentID, replyID, caller, req.Body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewReplyResponse(reply, caller))
}

func (h *CommentHandler) DeleteReply(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	commentID, ok := parseUUID(c, "commentId")
	if !ok {
		return nil
	}
	replyID, ok := parseUUID(c, "replyId")
	if !ok {
		return nil
	}

	if err := h.service.DeleteReply(commentID, replyID, caller); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Reply deleted"})
}
