package dto

import (
	"encoding/json"
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Title     string             `json:"title,omitempty"`
	Body      string             `json:"body"`
	Anonymous bool               `json:"anonymous"`
	IsPublic  bool               `json:"is_public"`
	Media     []models.MediaItem `json:"media,omitempty"`

	// UniversityID is a known id, or the sentinel "OTHER" together with
	// OtherUniversityName to resolve-or-create a pending record.
	UniversityID        string `json:"university_id"`
	OtherUniversityName string `json:"other_university_name,omitempty"`
}

type UpdateReportRequest struct {
	Title     *string             `json:"title,omitempty"`
	Body      *string             `json:"body,omitempty"`
	Anonymous *bool               `json:"anonymous,omitempty"`
	IsPublic  *bool               `json:"is_public,omitempty"`
	Media     *[]models.MediaItem `json:"media,omitempty"`
}

// AuthorRef is the author as shown to a caller. It is nil on records
// posted anonymously unless the caller is the author or an admin; the
// stored author id is never affected by masking.
type AuthorRef struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsStudent  bool      `json:"is_student"`
	Profession string    `json:"profession,omitempty"`
}

type UniversityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReportResponse struct {
	ID         uuid.UUID          `json:"id"`
	Title      string             `json:"title,omitempty"`
	Body       string             `json:"body"`
	University UniversityRef      `json:"university"`
	Author     *AuthorRef         `json:"author"`
	Anonymous  bool               `json:"anonymous"`
	IsPublic   bool               `json:"is_public"`
	Media      []models.MediaItem `json:"media"`
	Status     string             `json:"status"`
	LikeCount  int64              `json:"like_count"`
	FlagCount  int64              `json:"flag_count,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// MaskAuthor projects a record's author for one caller. The projection
// is the only place anonymity is applied.
func MaskAuthor(author *models.User, authorID uuid.UUID, anonymous bool, caller authz.Caller) *AuthorRef {
	if anonymous && !authz.CanSeeAuthor(authorID, caller) {
		return nil
	}
	if author == nil {
		return nil
	}
	return &AuthorRef{
		ID:         author.ID,
		Name:       author.Name,
		IsStudent:  author.IsStudent,
		Profession: author.Profession,
	}
}

// NewReportResponse builds the display projection of a report for one
// caller. Permission decisions happen before this; by the time a report
// reaches here the caller is allowed to see it.
func NewReportResponse(r *models.Report, likeCount, flagCount int64, caller authz.Caller) ReportResponse {
	var media []models.MediaItem
	if len(r.Media) > 0 {
		_ = json.Unmarshal(r.Media, &media)
	}
	if media == nil {
		media = []models.MediaItem{}
	}

	return ReportResponse{
		ID:         r.ID,
		Title:      r.Title,
		Body:       r.Body,
		University: UniversityRef{ID: r.University.ID, Name: r.University.Name},
		Author:     MaskAuthor(&r.Author, r.AuthorID, r.Anonymous, caller),
		Anonymous:  r.Anonymous,
		IsPublic:   r.IsPublic,
		Media:      media,
		Status:     r.Status,
		LikeCount:  likeCount,
		FlagCount:  flagCount,
		CreatedAt:  r.CreatedAt,
	}
}

type LikeResponse struct {
	Likes        int64 `json:"likes"`
	UserHasLiked bool  `json:"user_has_liked"`
}

type FlagResponse struct {
	Message string `json:"message"`
	Flags   int64  `json:"flags"`
}

// FlaggedReportResponse is the admin triage row: flag count first, no
// masking because flag review is an admin surface.
type FlaggedReportResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Author    AuthorRef `json:"author"`
	FlagCount int64     `json:"flag_count"`
	CreatedAt time.Time `json:"created_at"`
}
