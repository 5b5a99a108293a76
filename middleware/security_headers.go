// middleware/security_headers.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/security"
)

type SecurityConfig struct {
	AllowedDomains []string
	AllowInlineJS  bool
}

func SecurityHeadersWithConfig(config SecurityConfig) echo.MiddlewareFunc {
	csp := buildCSP(config)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			h.Set("Content-Security-Policy", csp)
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			h.Del("Server")
			h.Del("X-Powered-By")

			return next(c)
		}
	}
}

func buildCSP(config SecurityConfig) string {
	csp := []string{
		"default-src 'self'",
		"img-src 'self' data: https:",
		"style-src 'self' 'unsafe-inline'",
	}

	if config.AllowInlineJS {
		csp = append(csp, "script-src 'self' 'unsafe-inline'")
	} else {
		csp = append(csp, "script-src 'self'")
	}

	connect := "connect-src 'self'"
	if len(config.AllowedDomains) > 0 {
		connect += " " + strings.Join(config.AllowedDomains, " ")
	}
	csp = append(csp, connect)

	return strings.Join(csp, "; ")
}

// RequireContentType rejects write requests whose body is not JSON, form or
// multipart data.
func RequireContentType() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if req.ContentLength != 0 && !security.ValidateContentType(req.Header.Get(echo.HeaderContentType)) {
					return c.JSON(http.StatusUnsupportedMediaType, models.Response{
						Status:  http.StatusUnsupportedMediaType,
						Message: "Unsupported content type",
					})
				}
			}
			return next(c)
		}
	}
}
