package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"erpapi/internal/auth"
)

// ClaimsLocalKey is the Fiber locals key holding the caller's *auth.Claims.
const ClaimsLocalKey = "claims"

// TokenValidator parses a bearer token.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token.
func RequireAuth(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := v.Validate(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// RequireRole allows the request only when the caller has one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if _, ok := allowed[claims.Role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// ActiveChecker looks up whether a user account is still active.
type ActiveChecker interface {
	Active(ctx context.Context, userID string) (bool, error)
}

// RequireActive rejects callers whose account was deactivated after their
// token was issued. It must run after RequireAuth.
func RequireActive(a ActiveChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		active, err := a.Active(c.UserContext(), claims.UserID())
		if err != nil {
			return err
		}
		if !active {
			return fiber.NewError(fiber.StatusUnauthorized, "account is inactive")
		}
		return c.Next()
	}
}
