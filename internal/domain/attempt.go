package domain

import (
	"context"
	"strings"
	"time"
)

// Attempt is one graded quiz submission.
type Attempt struct {
	ID             string
	UserID         string
	Subject        string
	Level          string
	Score          int
	TotalQuestions int
	CreatedAt      time.Time
}

// NewAttempt creates the provisional attempt row written before grading.
func NewAttempt(userID, subject, level string, total int) *Attempt {
	return &Attempt{
		UserID:         userID,
		Subject:        subject,
		Level:          level,
		Score:          0,
		TotalQuestions: total,
		CreatedAt:      time.Now().UTC(),
	}
}

// Answer is the response to one question inside an attempt.
// An empty ChosenOption is stored as NULL.
type Answer struct {
	ID           string
	AttemptID    string
	QuestionID   string
	ChosenOption string
	IsCorrect    bool
}

// Submission carries the raw answers posted for a quiz.
type Submission struct {
	UserID      string
	Subject     string
	Level       string
	QuestionIDs []string
	// Chosen maps question id to the submitted option, before normalization.
	Chosen map[string]string
}

// CleanQuestionIDs drops blank ids and collapses duplicates, keeping first
// occurrence order, so an attempt never grades the same question twice.
func (s Submission) CleanQuestionIDs() []string {
	seen := make(map[string]struct{}, len(s.QuestionIDs))
	ids := make([]string, 0, len(s.QuestionIDs))
	for _, raw := range s.QuestionIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// SplitQuestionIDs parses the comma separated id list posted by the quiz form.
func SplitQuestionIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// GradedAnswer is the outcome for one question of a submission.
type GradedAnswer struct {
	Question  *Question
	Chosen    string
	IsCorrect bool
}

// AttemptResult is what the grader returns after persisting an attempt.
type AttemptResult struct {
	Attempt *Attempt
	Results []GradedAnswer
	Score   int
	Total   int
}

// Dashboard aggregates a user's history and the selectable banks.
type Dashboard struct {
	Attempts      []*Attempt
	SubjectLevels []SubjectLevel
}

// AttemptRepository defines the interface for attempt and answer persistence.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	UpdateAttemptScore(ctx context.Context, attemptID string, score int) error
	CreateAnswer(ctx context.Context, answer *Answer) error
	// ListAttemptsByUserID returns attempts most recent first.
	ListAttemptsByUserID(ctx context.Context, userID string) ([]*Attempt, error)
	DeleteAnswersByUserID(ctx context.Context, userID string) (int64, error)
	DeleteAttemptsByUserID(ctx context.Context, userID string) (int64, error)
}

// TransactionManager runs fn inside a single database transaction. Repositories
// called with the ctx passed to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
