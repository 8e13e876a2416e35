package dto

import (
	"time"

	"mcq-quiz/internal/domain"
)

// QuestionResponse is a question as shown while taking a quiz. The correct
// option is never included.
// @Description Question without its answer
type QuestionResponse struct {
	ID      string            `json:"id"`
	Number  int               `json:"number"`
	Text    string            `json:"question_text"`
	Options map[string]string `json:"options"`
}

// QuizResponse is the body of GET /quiz.
// @Description Questions selected for a quiz
type QuizResponse struct {
	Subject     string             `json:"subject"`
	Level       string             `json:"level"`
	Mode        string             `json:"mode"`
	QuestionIDs string             `json:"question_ids"`
	Questions   []QuestionResponse `json:"questions"`
	Message     string             `json:"message,omitempty"`
	Redirect    string             `json:"redirect,omitempty"`
}

// SubmitRequest is the JSON form of POST /quiz. Form posts carry the same
// fields plus one q_<id> field per answered question.
// @Description Request body for grading a quiz
type SubmitRequest struct {
	Subject     string            `json:"subject" form:"subject" validate:"required"`
	Level       string            `json:"level" form:"level" validate:"required"`
	QuestionIDs string            `json:"question_ids" form:"question_ids"`
	Answers     map[string]string `json:"answers" form:"-"`
}

// AnswerResult is the graded outcome of one question.
type AnswerResult struct {
	QuestionID    string `json:"question_id"`
	Number        int    `json:"number"`
	Text          string `json:"question_text"`
	Chosen        string `json:"chosen_option,omitempty"`
	CorrectOption string `json:"correct_option"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// ResultResponse is the body returned after grading.
// @Description Graded quiz attempt
type ResultResponse struct {
	AttemptID string         `json:"attempt_id"`
	Subject   string         `json:"subject"`
	Level     string         `json:"level"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Results   []AnswerResult `json:"results"`
}

// AttemptResponse is one row of the attempt history.
type AttemptResponse struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Level          string    `json:"level"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// DashboardResponse is the body of GET /.
// @Description Attempt history and selectable subjects
type DashboardResponse struct {
	Username      string              `json:"username"`
	Attempts      []AttemptResponse   `json:"attempts"`
	SubjectLevels map[string][]string `json:"subject_levels"`
}

// ResetResponse reports how many attempts were removed.
type ResetResponse struct {
	Message         string `json:"message"`
	AttemptsDeleted int64  `json:"attempts_deleted"`
	Redirect        string `json:"redirect"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func ToQuestionResponse(q *domain.Question) QuestionResponse {
	options := make(map[string]string, len(domain.ValidOptions))
	for _, letter := range domain.ValidOptions {
		options[letter] = q.Option(letter)
	}
	return QuestionResponse{ID: q.ID, Number: q.Number, Text: q.Text, Options: options}
}

func ToResultResponse(r *domain.AttemptResult) ResultResponse {
	resp := ResultResponse{
		AttemptID: r.Attempt.ID,
		Subject:   r.Attempt.Subject,
		Level:     r.Attempt.Level,
		Score:     r.Score,
		Total:     r.Total,
		Results:   make([]AnswerResult, 0, len(r.Results)),
	}
	for _, g := range r.Results {
		resp.Results = append(resp.Results, AnswerResult{
			QuestionID:    g.Question.ID,
			Number:        g.Question.Number,
			Text:          g.Question.Text,
			Chosen:        g.Chosen,
			CorrectOption: g.Question.CorrectOption,
			IsCorrect:     g.IsCorrect,
			Explanation:   g.Question.Explanation,
		})
	}
	return resp
}

func ToAttemptResponses(attempts []*domain.Attempt) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, AttemptResponse{
			ID:             a.ID,
			Subject:        a.Subject,
			Level:          a.Level,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			CreatedAt:      a.CreatedAt,
		})
	}
	return out
}
