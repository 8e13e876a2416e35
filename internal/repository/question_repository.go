package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/repository/models"
	"mcq-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository creates a question repository backed by sqlx.
func NewQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

var (
	selectQuestionSQL   = "SELECT " + util.ColumnList("", models.QuestionColumns...) + " FROM questions"
	selectQuestionQSQL  = "SELECT " + util.ColumnList("q", models.QuestionColumns...) + " FROM questions q"
	answeredByUserSQL   = "SELECT a.question_id FROM quiz_answers a JOIN quiz_attempts t ON t.id = a.attempt_id WHERE t.user_id = ?"
	listSubjectLevelSQL = `SELECT DISTINCT subject "subject", quiz_level "quiz_level" FROM questions ORDER BY 1, 2`
)

func (r *sqlxQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.Question
	if err := exec.GetContext(ctx, &m, exec.Rebind(selectQuestionSQL+" WHERE id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

func (r *sqlxQuestionRepository) ListQuestions(ctx context.Context, subject, level string, limit int) ([]*domain.Question, error) {
	query := selectQuestionSQL + " WHERE subject = ? AND quiz_level = ? ORDER BY question_number" + fetchFirst(limit)
	return r.list(ctx, query, subject, level)
}

func (r *sqlxQuestionRepository) ListUnansweredQuestions(ctx context.Context, userID, subject, level string, limit int) ([]*domain.Question, error) {
	query := selectQuestionQSQL +
		" WHERE q.subject = ? AND q.quiz_level = ? AND q.id NOT IN (" + answeredByUserSQL + ")" +
		" ORDER BY q.question_number" + fetchFirst(limit)
	return r.list(ctx, query, subject, level, userID)
}

func (r *sqlxQuestionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

func (r *sqlxQuestionRepository) ListSubjectLevels(ctx context.Context) ([]domain.SubjectLevel, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.SubjectLevel
	if err := exec.SelectContext(ctx, &rows, listSubjectLevelSQL); err != nil {
		return nil, fmt.Errorf("failed to list subject levels: %w", err)
	}
	pairs := make([]domain.SubjectLevel, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, domain.SubjectLevel{Subject: row.Subject, Level: row.QuizLevel})
	}
	return pairs, nil
}

func (r *sqlxQuestionRepository) ExistsByNumber(ctx context.Context, subject, level string, number int) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM questions WHERE subject = ? AND quiz_level = ? AND question_number = ?`)
	if err := exec.GetContext(ctx, &count, query, subject, level, number); err != nil {
		return false, fmt.Errorf("failed to check question %s/%s/%d: %w", subject, level, number, err)
	}
	return count > 0, nil
}

// SaveQuestion inserts a question, assigning an id when missing. A clash on
// (subject, level, number) is reported as domain.ErrDuplicateQuestion.
func (r *sqlxQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question.ID == "" {
		question.ID = util.NewULID()
	}
	m := fromDomainQuestion(question)

	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO questions (id, subject, quiz_level, question_number, question_text,
		option_a, option_b, option_c, option_d, correct_option, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := exec.ExecContext(ctx, query,
		m.ID, m.Subject, m.QuizLevel, m.QuestionNumber, m.QuestionText,
		m.OptionA, m.OptionB, m.OptionC, m.OptionD, m.CorrectOption, m.Explanation)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeDuplicateQuestion, domain.ErrDuplicateQuestion.Message, err)
		}
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:            m.ID,
		Subject:       m.Subject,
		Level:         m.QuizLevel,
		Number:        m.QuestionNumber,
		Text:          m.QuestionText,
		OptionA:       m.OptionA,
		OptionB:       m.OptionB,
		OptionC:       m.OptionC,
		OptionD:       m.OptionD,
		CorrectOption: m.CorrectOption,
		Explanation:   util.NullStringToString(m.Explanation),
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:             q.ID,
		Subject:        q.Subject,
		QuizLevel:      q.Level,
		QuestionNumber: q.Number,
		QuestionText:   q.Text,
		OptionA:        q.OptionA,
		OptionB:        q.OptionB,
		OptionC:        q.OptionC,
		OptionD:        q.OptionD,
		CorrectOption:  q.CorrectOption,
		Explanation:    util.StringToNullString(q.Explanation),
	}
}
