package middleware

import (
	"context"
	"errors"
	"strings"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"   // Key for storing UserID in fiber.Ctx locals
	UsernameKey         = "username" // Key for storing the username in fiber.Ctx locals
)

// SessionValidator resolves a session token to its principal.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*domain.Session, error)
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if authHeader := c.Get(AuthorizationHeader); strings.HasPrefix(authHeader, BearerSchema) {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema)); token != "" {
			return token
		}
	}
	return c.Cookies(cookieName)
}

// Protected requires a live session and stores the user in the context.
func Protected(sessions SessionValidator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			return unauthorized(c)
		}

		session, err := sessions.ValidateSession(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				logger.Get().Debug("Rejected session token", zap.String("path", c.Path()), zap.Error(err))
				return unauthorized(c)
			}
			return err
		}

		c.Locals(UserIDKey, session.UserID)
		c.Locals(UsernameKey, session.Username)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:     string(domain.CodeUnauthorized),
		Message:  domain.ErrUnauthorized.Message,
		Status:   fiber.StatusUnauthorized,
		Redirect: "/login",
	})
}
