package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/HSouheill/barrim_storefront/services"
)

const testSecret = "test-secret"

// signToken issues a token the way the backend does. ttl 0 never expires.
func signToken(t *testing.T, userID, email, userType string, ttl time.Duration) string {
	t.Helper()
	claims := &JwtCustomClaims{UserID: userID, Email: email, UserType: userType}
	claims.IssuedAt = time.Now().Unix()
	if ttl > 0 {
		claims.ExpiresAt = time.Now().Add(ttl).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newAdminServer(t *testing.T, seen *string) *echo.Echo {
	t.Helper()
	e := echo.New()
	g := e.Group("/api/admin", JWTMiddleware(testSecret, zerolog.Nop()), RequireUserType("admin", "super_admin"))
	g.GET("/ping", func(c echo.Context) error {
		*seen = services.TokenFromContext(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func TestAdminRoutesRequireToken(t *testing.T) {
	var seen string
	e := newAdminServer(t, &seen)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesForwardToken(t *testing.T) {
	var seen string
	e := newAdminServer(t, &seen)

	token := signToken(t, "u1", "admin@barrim.com", "admin", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, token, seen)
}

func TestAdminRoutesRejectOtherUserTypes(t *testing.T) {
	var seen string
	e := newAdminServer(t, &seen)

	token := signToken(t, "u2", "shopper@barrim.com", "user", 0)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExpiredToken(t *testing.T) {
	claims := JwtCustomClaims{UserType: "admin"}
	claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	assert.Error(t, claims.Valid())

	claims.ExpiresAt = 0
	assert.NoError(t, claims.Valid())
}

func TestRateLimiterBlocksContactSpam(t *testing.T) {
	limiter := NewRateLimiter()
	defer limiter.Stop()
	limiter.SetEndpointLimit("/api/contact", rate.Every(time.Hour), 2)

	e := echo.New()
	e.Use(limiter.RateLimit())
	e.POST("/api/contact", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })
	e.GET("/api/storefront/hero", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	req := httptest.NewRequest(http.MethodGet, "/api/storefront/hero", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	req.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeadersWithConfig(SecurityConfig{AllowedDomains: []string{"wss://shop.example.com"}}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "connect-src 'self' wss://shop.example.com")
}

func TestCORSConfigAddsOrigins(t *testing.T) {
	cfg := NewCORSConfig([]string{" https://staging.barrim.com ", ""})
	assert.Contains(t, cfg.AllowOrigins, "https://staging.barrim.com")
	assert.NotContains(t, cfg.AllowOrigins, "")
}

func TestRequireContentType(t *testing.T) {
	e := echo.New()
	e.Use(RequireContentType())
	e.POST("/api/contact", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("hello"))
	req.Header.Set(echo.HeaderContentType, "text/plain")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"a"}`))
	req.Header.Set(echo.HeaderContentType, "application/json; charset=utf-8")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
