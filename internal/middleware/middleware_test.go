package middleware_test

import (
	"net/http/httptest"
	"testing"

	"foodshare-backend/domain"
	"foodshare-backend/internal/middleware"
	"foodshare-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJWT struct {
	tokens map[string]*jwt.UserClaims
}

func (s *stubJWT) GenerateTokenUser(string, string, string) string { return "" }

func (s *stubJWT) ValidateTokenUser(string) (*gojwt.Token, error) { return nil, nil }

func (s *stubJWT) GetClaimsByToken(token string) (*jwt.UserClaims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func testApp(roles ...string) (*fiber.App, *stubJWT) {
	jwtService := &stubJWT{tokens: map[string]*jwt.UserClaims{
		"donor-token": {UserID: "u1", Role: domain.RoleDonor, Name: "Ana"},
		"admin-token": {UserID: "u2", Role: domain.RoleAdmin, Name: "Root"},
	}}

	app := fiber.New()
	app.Get("/protected", middleware.NewMiddleware().AuthMiddleware(jwtService, roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})
	return app, jwtService
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _ := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app, _ := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "donor-token")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app, _ := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app, _ := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer donor-token")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	app, _ := testApp(domain.RoleAdmin)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer donor-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
