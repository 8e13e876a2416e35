package handler_test

import (
	"context"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/dto"
	"mcq-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MockAuthService struct {
	RegisterFunc        func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	LoginFunc           func(ctx context.Context, identifier, password string) (string, *domain.User, error)
	LogoutFunc          func(ctx context.Context, token string)
	ValidateSessionFunc func(ctx context.Context, token string) (*domain.Session, error)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, identifier, password)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, token string) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(ctx, token)
	}
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*domain.Session, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	return nil, domain.ErrUnauthorized
}

type MockQuizService struct {
	SelectQuestionsFunc func(ctx context.Context, req domain.SelectionRequest) ([]*domain.Question, error)
	SubmitAttemptFunc   func(ctx context.Context, sub domain.Submission) (*domain.AttemptResult, error)
}

func (m *MockQuizService) SelectQuestions(ctx context.Context, req domain.SelectionRequest) ([]*domain.Question, error) {
	if m.SelectQuestionsFunc != nil {
		return m.SelectQuestionsFunc(ctx, req)
	}
	return []*domain.Question{}, nil
}

func (m *MockQuizService) SubmitAttempt(ctx context.Context, sub domain.Submission) (*domain.AttemptResult, error) {
	if m.SubmitAttemptFunc != nil {
		return m.SubmitAttemptFunc(ctx, sub)
	}
	return nil, nil
}

type MockDashboardService struct {
	ListAttemptsFunc      func(ctx context.Context, userID string) ([]*domain.Attempt, error)
	ListSubjectLevelsFunc func(ctx context.Context) ([]domain.SubjectLevel, error)
	DashboardFunc         func(ctx context.Context, userID string) (*domain.Dashboard, error)
	ResetProgressFunc     func(ctx context.Context, userID string) (int64, error)
}

func (m *MockDashboardService) ListAttempts(ctx context.Context, userID string) ([]*domain.Attempt, error) {
	if m.ListAttemptsFunc != nil {
		return m.ListAttemptsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockDashboardService) ListSubjectLevels(ctx context.Context) ([]domain.SubjectLevel, error) {
	if m.ListSubjectLevelsFunc != nil {
		return m.ListSubjectLevelsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDashboardService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, userID)
	}
	return &domain.Dashboard{}, nil
}

func (m *MockDashboardService) ResetProgress(ctx context.Context, userID string) (int64, error) {
	if m.ResetProgressFunc != nil {
		return m.ResetProgressFunc(ctx, userID)
	}
	return 0, nil
}

// authAs stands in for middleware.Protected.
func authAs(userID, username string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		c.Locals(middleware.UsernameKey, username)
		return c.Next()
	}
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}
