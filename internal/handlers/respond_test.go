package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func TestFailStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantOpaque bool
	}{
		{"validation", apperr.Validation("email", "email is required"), fiber.StatusBadRequest, false},
		{"unauthenticated", apperr.Unauthenticated("invalid credentials"), fiber.StatusUnauthorized, false},
		{"forbidden", apperr.Forbidden("not yours"), fiber.StatusForbidden, false},
		{"not found", apperr.NotFound("report not found"), fiber.StatusNotFound, false},
		{"conflict maps to 400", apperr.Conflict("already flagged"), fiber.StatusBadRequest, false},
		{"internal is opaque", apperr.Internal(errors.New("pq: relation missing"), "query failed"), fiber.StatusInternalServerError, true},
		{"plain error is opaque", errors.New("pq: relation missing"), fiber.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/probe", func(c *fiber.Ctx) error {
				return fail(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body dto.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if !body.Error {
				t.Fatal("error flag should be set")
			}
			if tt.wantOpaque && body.Message != "Server error" {
				t.Fatalf("internal error leaked: %q", body.Message)
			}
		})
	}
}

func TestFailValidationCarriesField(t *testing.T) {
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		return fail(c, apperr.Validation("universityId", "university is required"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Field != "universityId" {
		t.Fatalf("field = %q, want universityId", body.Field)
	}
}

func TestParseUUIDRejectsGarbage(t *testing.T) {
	app := fiber.New()
	app.Get("/probe/:id", func(c *fiber.Ctx) error {
		if _, ok := parseUUID(c, "id"); !ok {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
