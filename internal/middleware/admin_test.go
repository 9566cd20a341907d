package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestAdminRequired(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/admin", JWTProtected(cfg), AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", "admin", fiber.StatusOK},
		{"moderator forbidden", "moderator", fiber.StatusForbidden},
		{"member forbidden", "member", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, jwt.MapClaims{
				"sub":  uuid.NewString(),
				"role": tt.role,
			})
			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestModOrAdminRequired(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Post("/staff", JWTProtected(cfg), ModOrAdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin allowed", "admin", fiber.StatusCreated},
		{"moderator allowed", "moderator", fiber.StatusCreated},
		{"member forbidden", "member", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, jwt.MapClaims{
				"sub":  uuid.NewString(),
				"role": tt.role,
			})
			req := httptest.NewRequest("POST", "/staff", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
