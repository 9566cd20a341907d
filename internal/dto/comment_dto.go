package dto

import (
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
)

type AddCommentRequest struct {
	Body      string `json:"body"`
	Anonymous bool   `json:"anonymous"`
}

type UpdateCommentRequest struct {
	Body string `json:"body"`
}

type ReplyResponse struct {
	ID        uuid.UUID  `json:"id"`
	Body      string     `json:"body"`
	Author    *AuthorRef `json:"author"`
	Anonymous bool       `json:"anonymous"`
	CreatedAt time.Time  `json:"created_at"`
}

type CommentResponse struct {
	ID        uuid.UUID       `json:"id"`
	ReportID  uuid.UUID       `json:"report_id"`
	Body      string          `json:"body"`
	Author    *AuthorRef      `json:"author"`
	Anonymous bool            `json:"anonymous"`
	CreatedAt time.Time       `json:"created_at"`
	Replies   []ReplyResponse `json:"replies"`
}

func NewReplyResponse(r *models.Reply, caller authz.Caller) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		Body:      r.Body,
		Author:    MaskAuthor(&r.Author, r.AuthorID, r.Anonymous, caller),
		Anonymous: r.Anonymous,
		CreatedAt: r.CreatedAt,
	}
}

func NewCommentResponse(c *models.Comment, caller authz.Caller) CommentResponse {
	replies := make([]ReplyResponse, 0, len(c.Replies))
	for i := range c.Replies {
		replies = append(replies, NewReplyResponse(&c.Replies[i], caller))
	}
	return CommentResponse{
		ID:        c.ID,
		ReportID:  c.ReportID,
		Body:      c.Body,
		Author:    MaskAuthor(&c.Author, c.AuthorID, c.Anonymous, caller),
		Anonymous: c.Anonymous,
		CreatedAt: c.CreatedAt,
		Replies:   replies,
	}
}
