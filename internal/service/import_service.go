package service

import (
	"context"
	"strings"

	"mcq-quiz/internal/cache"
	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/logger"

	"go.uber.org/zap"
)

// ImportService loads question banks into storage.
type ImportService interface {
	ImportQuestions(ctx context.Context, subject, level string, records []domain.QuestionRecord) (*domain.ImportReport, error)
}

type importService struct {
	questions domain.QuestionRepository
	txManager domain.TransactionManager
	cache     domain.Cache
}

// NewImportService creates an ImportService. The cache, when set, has its
// subject/level listing invalidated after a successful import.
func NewImportService(questions domain.QuestionRepository, txManager domain.TransactionManager, c domain.Cache) ImportService {
	return &importService{questions: questions, txManager: txManager, cache: c}
}

// ImportQuestions adds the records that are not stored yet, all in one
// transaction. Records whose (subject, level, number) exists are skipped and
// invalid records are counted and logged.
func (s *importService) ImportQuestions(ctx context.Context, subject, level string, records []domain.QuestionRecord) (*domain.ImportReport, error) {
	subject = strings.TrimSpace(subject)
	level = strings.TrimSpace(level)
	if subject == "" || level == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("subject/level")}
	}

	report := &domain.ImportReport{Subject: subject, Level: level}
	log := logger.Get().With(zap.String("subject", subject), zap.String("level", level))

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i, rec := range records {
			q := rec.ToQuestion(subject, level, i+1)
			if err := q.Validate(); err != nil {
				report.Invalid++
				log.Warn("Skipping invalid question record", zap.Int("position", i+1), zap.Error(err))
				continue
			}

			exists, err := s.questions.ExistsByNumber(txCtx, subject, level, q.Number)
			if err != nil {
				return err
			}
			if exists {
				report.Skipped++
				continue
			}

			// A duplicate here means a concurrent import won the race; the
			// transaction is aborted and the file can be re-run.
			if err := s.questions.SaveQuestion(txCtx, q); err != nil {
				return err
			}
			report.Added++
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to import questions", err)
	}

	if s.cache != nil && report.Added > 0 {
		if err := s.cache.Delete(ctx, cache.SubjectLevelsKey()); err != nil {
			log.Warn("Failed to invalidate subject level cache", zap.Error(err))
		}
	}

	log.Info("Questions imported",
		zap.Int("added", report.Added),
		zap.Int("skipped", report.Skipped),
		zap.Int("invalid", report.Invalid),
	)
	return report, nil
}
