package middleware

import (
	"strings"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals set by ValidateQuizQuery.
const (
	ValidatedSelectionKey = "validated_selection"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	defaultLimit int
}

// NewValidationMiddleware uses defaultLimit when a quiz request omits limit.
func NewValidationMiddleware(defaultLimit int) *ValidationMiddleware {
	return &ValidationMiddleware{defaultLimit: defaultLimit}
}

// ValidateQuizQuery parses subject, level, limit and mode of GET /quiz and
// stores a domain.SelectionRequest in the context.
func (vm *ValidationMiddleware) ValidateQuizQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors

		limit, err := validation.ParseLimit(c.Query("limit"), vm.defaultLimit)
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("limit", c.Query("limit")))
		}
		mode, err := domain.ParseSelectionMode(c.Query("mode"))
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("mode", c.Query("mode")))
		}

		req := domain.SelectionRequest{
			Subject: strings.TrimSpace(c.Query("subject")),
			Level:   strings.TrimSpace(c.Query("level")),
			Limit:   limit,
			Mode:    mode,
		}
		if req.Subject == "" {
			errs = append(errs, domain.NewMissingFieldError("subject"))
		}
		if req.Level == "" {
			errs = append(errs, domain.NewMissingFieldError("level"))
		}
		if len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedSelectionKey, req)
		return c.Next()
	}
}
