// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/services"
)

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	jwt.StandardClaims
}

// Valid implements the Claims interface for echo's JWT middleware
func (c JwtCustomClaims) Valid() error {
	// ExpiresAt 0 means the token does not expire
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// JWTMiddleware validates the bearer token of admin requests and forwards
// it to the backend through the request context.
func JWTMiddleware(secret string, logger zerolog.Logger) echo.MiddlewareFunc {
	if secret == "" {
		logger.Warn().Msg("JWT_SECRET is not set, admin routes are disabled")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		SuccessHandler: func(c echo.Context) {
			user := c.Get("user").(*jwt.Token)
			claims := user.Claims.(*JwtCustomClaims)

			c.Set("userId", claims.UserID)
			c.Set("userType", claims.UserType)
			c.Set("email", claims.Email)

			req := c.Request()
			c.SetRequest(req.WithContext(services.WithToken(req.Context(), user.Raw)))
		},
		ErrorHandler: func(err error) error {
			logger.Debug().Err(err).Msg("jwt validation failed")
			if err.Error() == "token contains an invalid number of segments" {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid token format")
			}
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Please provide valid credentials")
		},
	})
}

// GetUserFromToken extracts user information from JWT token
func GetUserFromToken(c echo.Context) *JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// ExtractUserType safely extracts the user type from the context
func ExtractUserType(c echo.Context) string {
	if userType, ok := c.Get("userType").(string); ok && userType != "" {
		return userType
	}
	if claims := GetUserFromToken(c); claims != nil {
		return claims.UserType
	}
	return ""
}
