package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hello-globe/backend/internal/middleware"
	"github.com/hello-globe/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func runMiddleware(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/friends/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())
	next := func(c echo.Context) error { return nil }
	return c, middleware.JWTAuthMiddleware(testSecret)(next)(c)
}

func TestJWTAuthValidToken(t *testing.T) {
	c, err := runMiddleware(t, "Bearer "+signedToken(t, testSecret))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), c.Get("userID"))
	assert.Equal(t, "alice", c.Get("username"))
}

func TestJWTAuthWrongSecret(t *testing.T) {
	_, err := runMiddleware(t, "Bearer "+signedToken(t, "other-secret"))
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Invalid token signature", he.Message)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	_, err := runMiddleware(t, "Bearer not-a-token")
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Invalid token", he.Message)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	_, err := runMiddleware(t, "")
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
