package repository

import (
	"context"
	"fmt"
	"time"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/repository/models"
	"mcq-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxAttemptRepository struct {
	db     *sqlx.DB
	driver string
}

// NewAttemptRepository creates an attempt/answer repository backed by sqlx.
func NewAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db, driver: db.DriverName()}
}

var selectAttemptSQL = "SELECT " + util.ColumnList("", models.QuizAttemptColumns...) + " FROM quiz_attempts"

func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO quiz_attempts (id, user_id, subject, quiz_level, score, total_questions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := exec.ExecContext(ctx, query,
		attempt.ID, attempt.UserID, attempt.Subject, attempt.Level, attempt.Score, attempt.TotalQuestions, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

func (r *sqlxAttemptRepository) UpdateAttemptScore(ctx context.Context, attemptID string, score int) error {
	exec := GetExecutor(ctx, r.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`UPDATE quiz_attempts SET score = ? WHERE id = ?`), score, attemptID)
	if err != nil {
		return fmt.Errorf("failed to update score of attempt %s: %w", attemptID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("attempt %s not found", attemptID))
	}
	return nil
}

func (r *sqlxAttemptRepository) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	if answer.ID == "" {
		answer.ID = util.NewULID()
	}
	m := fromDomainAnswer(answer)
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO quiz_answers (id, attempt_id, question_id, chosen_option, is_correct) VALUES (?, ?, ?, ?, ?)`)
	_, err := exec.ExecContext(ctx, query,
		m.ID, m.AttemptID, m.QuestionID, m.ChosenOption, boolArg(r.driver, m.IsCorrect))
	if err != nil {
		return fmt.Errorf("failed to create quiz answer: %w", err)
	}
	return nil
}

func (r *sqlxAttemptRepository) ListAttemptsByUserID(ctx context.Context, userID string) ([]*domain.Attempt, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.QuizAttempt
	query := exec.Rebind(selectAttemptSQL + " WHERE user_id = ? ORDER BY created_at DESC, id DESC")
	if err := exec.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list attempts of user %s: %w", userID, err)
	}
	attempts := make([]*domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}

func (r *sqlxAttemptRepository) DeleteAnswersByUserID(ctx context.Context, userID string) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`DELETE FROM quiz_answers WHERE attempt_id IN (SELECT id FROM quiz_attempts WHERE user_id = ?)`)
	result, err := exec.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete answers of user %s: %w", userID, err)
	}
	return result.RowsAffected()
}

func (r *sqlxAttemptRepository) DeleteAttemptsByUserID(ctx context.Context, userID string) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM quiz_attempts WHERE user_id = ?`), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attempts of user %s: %w", userID, err)
	}
	return result.RowsAffected()
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	return &domain.Attempt{
		ID:             m.ID,
		UserID:         m.UserID,
		Subject:        m.Subject,
		Level:          m.QuizLevel,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		CreatedAt:      m.CreatedAt,
	}
}

func fromDomainAnswer(a *domain.Answer) *models.QuizAnswer {
	return &models.QuizAnswer{
		ID:           a.ID,
		AttemptID:    a.AttemptID,
		QuestionID:   a.QuestionID,
		ChosenOption: util.StringToNullString(a.ChosenOption),
		IsCorrect:    a.IsCorrect,
	}
}
