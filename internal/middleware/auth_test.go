package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func callerApp(cfg *config.Config, guard fiber.Handler) (*fiber.App, *authz.Caller) {
	app := fiber.New()
	var captured authz.Caller
	app.Get("/probe", guard, func(c *fiber.Ctx) error {
		captured = Caller(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	app, _ := callerApp(testConfig(), JWTProtected(testConfig()))

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	app, _ := callerApp(testConfig(), JWTProtected(testConfig()))

	token := signToken(t, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "member",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestJWTProtectedResolvesCaller(t *testing.T) {
	cfg := testConfig()
	app, captured := callerApp(cfg, JWTProtected(cfg))

	userID := uuid.New()
	universityID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":           userID.String(),
		"role":          "moderator",
		"university_id": universityID.String(),
	})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !captured.Authenticated || captured.ID != userID {
		t.Fatalf("caller = %+v, want authenticated %s", captured, userID)
	}
	if captured.Role != authz.RoleModerator {
		t.Fatalf("role = %v, want moderator", captured.Role)
	}
	if captured.UniversityID == nil || *captured.UniversityID != universityID {
		t.Fatalf("university = %v, want %s", captured.UniversityID, universityID)
	}
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	cfg := testConfig()
	app, captured := callerApp(cfg, OptionalAuth(cfg))

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if captured.Authenticated {
		t.Fatal("caller without a token should be anonymous")
	}
	if captured.Role != authz.RoleGuest {
		t.Fatalf("role = %v, want guest", captured.Role)
	}
}

func TestOptionalAuthInvalidTokenContinuesAsGuest(t *testing.T) {
	cfg := testConfig()
	app, captured := callerApp(cfg, OptionalAuth(cfg))

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if captured.Authenticated {
		t.Fatal("invalid token should resolve to the anonymous caller")
	}
}

func TestOptionalAuthResolvesValidToken(t *testing.T) {
	cfg := testConfig()
	app, captured := callerApp(cfg, OptionalAuth(cfg))

	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "member",
	})
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !captured.Authenticated || captured.ID != userID {
		t.Fatalf("caller = %+v, want %s", captured, userID)
	}
}
