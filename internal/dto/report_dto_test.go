package dto

import (
	"testing"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestMaskAuthor(t *testing.T) {
	authorID := uuid.New()
	author := &models.User{
		Name:      "Kasun Perera",
		IsStudent: true,
	}
	author.ID = authorID
	universityID := uuid.New()

	owner := authz.Caller{ID: authorID, Role: authz.RoleMember, Authenticated: true}
	stranger := authz.Caller{ID: uuid.New(), Role: authz.RoleMember, Authenticated: true}
	mod := authz.Caller{ID: uuid.New(), Role: authz.RoleModerator, UniversityID: &universityID, Authenticated: true}
	adm := authz.Caller{ID: uuid.New(), Role: authz.RoleAdmin, Authenticated: true}

	tests := []struct {
		name      string
		anonymous bool
		caller    authz.Caller
		wantShown bool
	}{
		{"named report shown to guest", false, authz.Anonymous(), true},
		{"anonymous hidden from guest", true, authz.Anonymous(), false},
		{"anonymous hidden from other member", true, stranger, false},
		{"anonymous hidden from moderator", true, mod, false},
		{"anonymous shown to owner", true, owner, true},
		{"anonymous shown to admin", true, adm, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskAuthor(author, authorID, tt.anonymous, tt.caller)
			if (got != nil) != tt.wantShown {
				t.Fatalf("MaskAuthor() shown = %v, want %v", got != nil, tt.wantShown)
			}
			if got != nil && got.Name != "Kasun Perera" {
				t.Fatalf("Name = %q", got.Name)
			}
		})
	}
}

func TestNewReportResponse(t *testing.T) {
	authorID := uuid.New()
	report := &models.Report{
		Title:     "Hazing at orientation week",
		Body:      "First year students were kept overnight.",
		AuthorID:  authorID,
		Anonymous: true,
		IsPublic:  true,
		Status:    "pending",
		Media:     datatypes.JSON(`[{"url":"https://cdn.example.com/a.jpg","kind":"image"}]`),
	}
	report.ID = uuid.New()
	report.Author = models.User{Name: "Kasun Perera"}
	report.Author.ID = authorID
	report.University = models.University{Name: "university of colombo"}
	report.University.ID = uuid.New()

	resp := NewReportResponse(report, 3, 1, authz.Anonymous())
	if resp.Author != nil {
		t.Fatal("anonymous report should hide the author from guests")
	}
	if resp.LikeCount != 3 || resp.FlagCount != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", resp.LikeCount, resp.FlagCount)
	}
	if len(resp.Media) != 1 || resp.Media[0].URL != "https://cdn.example.com/a.jpg" {
		t.Fatalf("unexpected media: %+v", resp.Media)
	}
	if resp.University.Name != "university of colombo" {
		t.Fatalf("university = %q", resp.University.Name)
	}
}

func TestNewReportResponseEmptyMedia(t *testing.T) {
	report := &models.Report{AuthorID: uuid.New(), IsPublic: true}
	report.ID = uuid.New()

	resp := NewReportResponse(report, 0, 0, authz.Anonymous())
	if resp.Media == nil {
		t.Fatal("media should serialize as an empty list, not null")
	}
	if len(resp.Media) != 0 {
		t.Fatalf("media = %+v, want empty", resp.Media)
	}
}
