package models

import (
	"database/sql"
	"time"
)

// QuizAttempt is a row of the quiz_attempts table.
type QuizAttempt struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Subject        string    `db:"subject"`
	QuizLevel      string    `db:"quiz_level"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CreatedAt      time.Time `db:"created_at"`
}

var QuizAttemptColumns = []string{"id", "user_id", "subject", "quiz_level", "score", "total_questions", "created_at"}

// QuizAnswer is a row of the quiz_answers table.
type QuizAnswer struct {
	ID           string         `db:"id"`
	AttemptID    string         `db:"attempt_id"`
	QuestionID   string         `db:"question_id"`
	ChosenOption sql.NullString `db:"chosen_option"`
	IsCorrect    bool           `db:"is_correct"`
}
