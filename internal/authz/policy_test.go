package authz

import (
	"testing"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
)

func member(id uuid.UUID) Caller {
	return Caller{ID: id, Role: RoleMember, Authenticated: true}
}

func moderator(id, universityID uuid.UUID) Caller {
	return Caller{ID: id, Role: RoleModerator, UniversityID: &universityID, Authenticated: true}
}

func admin(id uuid.UUID) Caller {
	return Caller{ID: id, Role: RoleAdmin, Authenticated: true}
}

func TestCanViewReport(t *testing.T) {
	authorID := uuid.New()
	universityID := uuid.New()
	otherUniversityID := uuid.New()

	public := &models.Report{AuthorID: authorID, UniversityID: universityID, IsPublic: true}
	private := &models.Report{AuthorID: authorID, UniversityID: universityID, IsPublic: false}

	tests := []struct {
		name   string
		report *models.Report
		caller Caller
		want   bool
	}{
		{"guest sees public", public, Anonymous(), true},
		{"guest blocked from private", private, Anonymous(), false},
		{"stranger blocked from private", private, member(uuid.New()), false},
		{"author sees own private", private, member(authorID), true},
		{"admin sees any private", private, admin(uuid.New()), true},
		{"moderator of university sees private", private, moderator(uuid.New(), universityID), true},
		{"moderator of other university blocked", private, moderator(uuid.New(), otherUniversityID), false},
		{"moderator without affiliation blocked", private, Caller{ID: uuid.New(), Role: RoleModerator, Authenticated: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewReport(tt.report, tt.caller); got != tt.want {
				t.Fatalf("CanViewReport() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	authorID := uuid.New()
	universityID := uuid.New()

	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{"guest", Anonymous(), false},
		{"owner", member(authorID), true},
		{"other member", member(uuid.New()), false},
		{"moderator gets no extra rights", moderator(uuid.New(), universityID), false},
		{"admin", admin(uuid.New()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(authorID, tt.caller); got != tt.want {
				t.Fatalf("CanMutate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanSeeAuthor(t *testing.T) {
	authorID := uuid.New()
	universityID := uuid.New()

	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{"guest", Anonymous(), false},
		{"author sees self", member(authorID), true},
		{"other member", member(uuid.New()), false},
		{"moderator cannot unmask", moderator(uuid.New(), universityID), false},
		{"admin", admin(uuid.New()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSeeAuthor(authorID, tt.caller); got != tt.want {
				t.Fatalf("CanSeeAuthor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeratorOf(t *testing.T) {
	universityID := uuid.New()
	if !moderator(uuid.New(), universityID).ModeratorOf(universityID) {
		t.Fatal("expected moderator to match own university")
	}
	if moderator(uuid.New(), universityID).ModeratorOf(uuid.New()) {
		t.Fatal("moderator should not match another university")
	}
	if admin(uuid.New()).ModeratorOf(universityID) {
		t.Fatal("admin is not a moderator")
	}
}
