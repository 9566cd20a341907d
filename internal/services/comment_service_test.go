package services

import (
	"testing"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/google/uuid"
)

const spamBody = "https://a.example https://b.example https://c.example buy now"

// Body validation runs before any load, so a nil db proves the edit
// paths reject spam without reaching the store.
func newValidationOnlyCommentService() *CommentService {
	return &CommentService{filter: NewContentFilter()}
}

func TestCheckBody(t *testing.T) {
	s := newValidationOnlyCommentService()

	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{"clean body", "I saw the same thing happen.", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"link spam", spamBody, false},
		{"repeated rune spam", "nooooooooooooo way", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.checkBody("comment", tt.body)
			if (err == nil) != tt.wantOK {
				t.Fatalf("checkBody(%q) = %v, want ok=%v", tt.body, err, tt.wantOK)
			}
			if err != nil && apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("kind = %v, want validation", apperr.KindOf(err))
			}
		})
	}
}

func TestUpdateCommentRejectsSpamBeforeLoad(t *testing.T) {
	s := newValidationOnlyCommentService()
	caller := authz.Caller{ID: uuid.New(), Role: authz.RoleMember, Authenticated: true}

	_, err := s.UpdateComment(uuid.New(), caller, spamBody)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("UpdateComment spam edit: kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestUpdateReplyRejectsSpamBeforeLoad(t *testing.T) {
	s := newValidationOnlyCommentService()
	caller := authz.Caller{ID: uuid.New(), Role: authz.RoleMember, Authenticated: true}

	_, err := s.UpdateReply(uuid.New(), uuid.New(), caller, spamBody)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("UpdateReply spam edit: kind = %v, want validation", apperr.KindOf(err))
	}
}
