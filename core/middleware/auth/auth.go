package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsKey is where the authenticated owner id is stored on the Fiber
// context.
const LocalsKey = "owner_id"

// Config holds configuration for the auth middleware.
type Config struct {
	// Secret is the HS256 secret session tokens are signed with.
	Secret string
}

// New returns middleware that validates the bearer session token and stores
// the owner identity (the token's sub claim) in request locals. Requests
// without a valid token are rejected with 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if tokenString == "" {
			// The extension's service worker cannot always set headers on
			// streamed requests, so a query token is accepted as fallback.
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			return unauthorized(c, "no token provided")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "could not parse token claims")
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return unauthorized(c, "subject claim is missing")
		}

		c.Locals(LocalsKey, sub)
		return c.Next()
	}
}

// OwnerID returns the authenticated owner id, or "" when the request never
// passed through the middleware.
func OwnerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized: " + reason,
	})
}
