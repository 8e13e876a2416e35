package service

import (
	"context"
	"strings"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService selects questions for a quiz and grades submissions.
type QuizService interface {
	// SelectQuestions returns an empty slice, not an error, when nothing is left.
	SelectQuestions(ctx context.Context, req domain.SelectionRequest) ([]*domain.Question, error)
	SubmitAttempt(ctx context.Context, sub domain.Submission) (*domain.AttemptResult, error)
}

type quizService struct {
	questions domain.QuestionRepository
	attempts  domain.AttemptRepository
	txManager domain.TransactionManager
}

// NewQuizService creates a new instance of quizService
func NewQuizService(questions domain.QuestionRepository, attempts domain.AttemptRepository, txManager domain.TransactionManager) QuizService {
	return &quizService{
		questions: questions,
		attempts:  attempts,
		txManager: txManager,
	}
}

func (s *quizService) SelectQuestions(ctx context.Context, req domain.SelectionRequest) ([]*domain.Question, error) {
	if req.Mode == "" {
		req.Mode = domain.ModeNew
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		questions []*domain.Question
		err       error
	)
	if req.Mode == domain.ModeNew {
		questions, err = s.questions.ListUnansweredQuestions(ctx, req.UserID, req.Subject, req.Level, req.Limit)
	} else {
		questions, err = s.questions.ListQuestions(ctx, req.Subject, req.Level, req.Limit)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to select questions", err)
	}
	if questions == nil {
		questions = []*domain.Question{}
	}

	logger.Get().Debug("Questions selected",
		zap.String("userID", req.UserID),
		zap.String("subject", req.Subject),
		zap.String("level", req.Level),
		zap.String("mode", string(req.Mode)),
		zap.Int("count", len(questions)),
	)
	return questions, nil
}

// SubmitAttempt grades every known question of the submission and stores the
// attempt with its answers in one transaction. Unknown ids are skipped but
// still count towards the total.
func (s *quizService) SubmitAttempt(ctx context.Context, sub domain.Submission) (*domain.AttemptResult, error) {
	ids := sub.CleanQuestionIDs()
	if len(ids) == 0 {
		return nil, domain.NewInvalidSubmissionError("Invalid submission")
	}
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Level = strings.TrimSpace(sub.Level)
	var verrs domain.ValidationErrors
	if sub.Subject == "" {
		verrs = append(verrs, domain.NewMissingFieldError("subject"))
	}
	if sub.Level == "" {
		verrs = append(verrs, domain.NewMissingFieldError("level"))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	attempt := domain.NewAttempt(sub.UserID, sub.Subject, sub.Level, len(ids))
	result := &domain.AttemptResult{Attempt: attempt, Total: len(ids)}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attempts.CreateAttempt(txCtx, attempt); err != nil {
			return err
		}

		for _, id := range ids {
			question, err := s.questions.GetQuestionByID(txCtx, id)
			if err != nil {
				return err
			}
			if question == nil {
				logger.Get().Debug("Skipping unknown question", zap.String("questionID", id))
				continue
			}

			chosen := domain.NormalizeOption(sub.Chosen[id])
			correct := question.IsCorrect(chosen)
			answer := &domain.Answer{
				AttemptID:    attempt.ID,
				QuestionID:   question.ID,
				ChosenOption: chosen,
				IsCorrect:    correct,
			}
			if err := s.attempts.CreateAnswer(txCtx, answer); err != nil {
				return err
			}
			if correct {
				result.Score++
			}
			result.Results = append(result.Results, domain.GradedAnswer{
				Question:  question,
				Chosen:    chosen,
				IsCorrect: correct,
			})
		}

		if err := s.attempts.UpdateAttemptScore(txCtx, attempt.ID, result.Score); err != nil {
			return err
		}
		attempt.Score = result.Score
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to save attempt", err)
	}

	logger.Get().Info("Attempt graded",
		zap.String("userID", sub.UserID),
		zap.String("attemptID", attempt.ID),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)
	return result, nil
}
