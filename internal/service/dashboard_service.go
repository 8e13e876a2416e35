package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mcq-quiz/internal/cache"
	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardService serves the attempt history and the subject/level listing.
type DashboardService interface {
	ListAttempts(ctx context.Context, userID string) ([]*domain.Attempt, error)
	ListSubjectLevels(ctx context.Context) ([]domain.SubjectLevel, error)
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
	// ResetProgress removes the user's answers and attempts and returns the
	// number of attempts deleted.
	ResetProgress(ctx context.Context, userID string) (int64, error)
}

type dashboardService struct {
	questions domain.QuestionRepository
	attempts  domain.AttemptRepository
	txManager domain.TransactionManager
	cache     domain.Cache
	cacheTTL  time.Duration
}

// NewDashboardService creates a DashboardService. A nil cache disables caching.
func NewDashboardService(
	questions domain.QuestionRepository,
	attempts domain.AttemptRepository,
	txManager domain.TransactionManager,
	c domain.Cache,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		questions: questions,
		attempts:  attempts,
		txManager: txManager,
		cache:     c,
		cacheTTL:  cacheTTL,
	}
}

func (s *dashboardService) ListAttempts(ctx context.Context, userID string) ([]*domain.Attempt, error) {
	attempts, err := s.attempts.ListAttemptsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list attempts", err)
	}
	return attempts, nil
}

// ListSubjectLevels reads through the cache; any cache failure falls back to
// the database.
func (s *dashboardService) ListSubjectLevels(ctx context.Context) ([]domain.SubjectLevel, error) {
	key := cache.SubjectLevelsKey()
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var pairs []domain.SubjectLevel
			if jsonErr := json.Unmarshal([]byte(cached), &pairs); jsonErr == nil {
				return pairs, nil
			}
			logger.Get().Warn("Discarding malformed subject level cache entry", zap.String("key", key))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Subject level cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	pairs, err := s.questions.ListSubjectLevels(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list subjects", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(pairs); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
				logger.Get().Warn("Subject level cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return pairs, nil
}

func (s *dashboardService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	var dash domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		attempts, err := s.ListAttempts(gctx, userID)
		dash.Attempts = attempts
		return err
	})
	g.Go(func() error {
		pairs, err := s.ListSubjectLevels(gctx)
		dash.SubjectLevels = pairs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (s *dashboardService) ResetProgress(ctx context.Context, userID string) (int64, error) {
	var deleted int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		answers, err := s.attempts.DeleteAnswersByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		deleted, err = s.attempts.DeleteAttemptsByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		logger.Get().Info("Progress reset",
			zap.String("userID", userID),
			zap.Int64("answers", answers),
			zap.Int64("attempts", deleted),
		)
		return nil
	})
	if err != nil {
		return 0, domain.NewInternalError("Failed to reset progress", err)
	}
	return deleted, nil
}
