package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("email", "email is required"), KindValidation},
		{"unauthenticated", Unauthenticated("invalid credentials"), KindUnauthenticated},
		{"forbidden", Forbidden("not yours"), KindForbidden},
		{"not found", NotFound("report not found"), KindNotFound},
		{"conflict", Conflict("already flagged"), KindConflict},
		{"internal", Internal(errors.New("boom"), "query failed"), KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("gone")), KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "query failed")
	if !errors.Is(err, cause) {
		t.Fatal("expected Internal error to wrap its cause")
	}
	if err.Error() != "query failed: connection refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsMatchesByKind(t *testing.T) {
	if !errors.Is(NotFound("report not found"), NotFound("anything")) {
		t.Fatal("expected two NotFound errors to match")
	}
	if errors.Is(NotFound("report not found"), Forbidden("nope")) {
		t.Fatal("NotFound should not match Forbidden")
	}
}

func TestValidationCarriesField(t *testing.T) {
	err := Validation("universityId", "university is required")
	if err.Field != "universityId" {
		t.Fatalf("Field = %q, want universityId", err.Field)
	}
}
