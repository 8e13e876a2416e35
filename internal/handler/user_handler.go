package handler

import (
	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/dto"
	"mcq-quiz/internal/logger"
	"mcq-quiz/internal/middleware"
	"mcq-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	dashboardService service.DashboardService
}

func NewUserHandler(dashboardService service.DashboardService) *UserHandler {
	return &UserHandler{dashboardService: dashboardService}
}

// Dashboard lists the user's attempts and the available subjects.
// @Summary Dashboard
// @Description Attempt history, most recent first, and the subject to levels map.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router / [get]
func (h *UserHandler) Dashboard(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == "" {
		return domain.ErrUnauthorized
	}

	dash, err := h.dashboardService.Dashboard(c.UserContext(), userID)
	if err != nil {
		return err
	}

	username, _ := c.Locals(middleware.UsernameKey).(string)
	return c.JSON(dto.DashboardResponse{
		Username:      username,
		Attempts:      dto.ToAttemptResponses(dash.Attempts),
		SubjectLevels: domain.GroupSubjectLevels(dash.SubjectLevels),
	})
}

// ResetProgress deletes the user's attempts and answers.
// @Summary Reset progress
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ResetResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /reset-progress [get]
// @Router /reset-progress [post]
func (h *UserHandler) ResetProgress(c *fiber.Ctx) error {
	userID := userIDFromContext(c)
	if userID == "" {
		return domain.ErrUnauthorized
	}

	deleted, err := h.dashboardService.ResetProgress(c.UserContext(), userID)
	if err != nil {
		return err
	}
	logger.Get().Info("User reset progress", zap.String("userID", userID), zap.Int64("attempts", deleted))
	return c.JSON(dto.ResetResponse{
		Message:         "Your progress has been reset.",
		AttemptsDeleted: deleted,
		Redirect:        "/",
	})
}
