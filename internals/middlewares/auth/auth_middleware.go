// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"timetable_backend/internals/configs"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("malformed Authorization header")
	}
	// cookie fallback for browser clients
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("missing Authorization header")
}

// AuthJWT verifies the access token and stores user_id and user_role in
// request locals for downstream handlers.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		if typ, _ := claims["typ"].(string); typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "not an access token")
		}
		if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() >= int64(exp) {
			return fiber.NewError(fiber.StatusUnauthorized, "token expired")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing subject claim")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", sub)
		c.Locals("user_role", role)
		return c.Next()
	}
}

// OptionalAuthJWT populates locals when a valid token is present and lets
// anonymous requests through. Handlers decide what anonymity may do.
func OptionalAuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil || configs.JWTSecret == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return c.Next()
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return c.Next()
		}
		if exp, ok := claims["exp"].(float64); !ok || time.Now().Unix() >= int64(exp) {
			return c.Next()
		}

		if sub, _ := claims["sub"].(string); sub != "" {
			c.Locals("user_id", sub)
			role, _ := claims["role"].(string)
			c.Locals("user_role", role)
		}
		return c.Next()
	}
}
