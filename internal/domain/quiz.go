package domain

import (
	"context"
	"fmt"
	"strings"
)

// Option letters a question can offer.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

// ValidOptions lists the option letters in display order.
var ValidOptions = []string{OptionA, OptionB, OptionC, OptionD}

// NormalizeOption trims and upper-cases a submitted option and keeps only its
// first character. It returns "" when the result is not one of A-D, which the
// grader treats as unanswered.
func NormalizeOption(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = s[:1]
	for _, opt := range ValidOptions {
		if s == opt {
			return s
		}
	}
	return ""
}

// Question is one multiple-choice item of a (subject, level) bank.
type Question struct {
	ID            string
	Subject       string
	Level         string
	Number        int
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Explanation   string
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.Subject) == "" {
		errs = append(errs, NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(q.Level) == "" {
		errs = append(errs, NewMissingFieldError("level"))
	}
	if q.Number <= 0 {
		errs = append(errs, NewInvalidValueError("number", "number must be positive"))
	}
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, NewMissingFieldError("question_text"))
	}
	// Oracle stores '' as NULL, so blank options are rejected on every dialect.
	for _, letter := range ValidOptions {
		if strings.TrimSpace(q.Option(letter)) == "" {
			errs = append(errs, NewMissingFieldError("option_"+strings.ToLower(letter)))
		}
	}
	if NormalizeOption(q.CorrectOption) != q.CorrectOption || q.CorrectOption == "" {
		errs = append(errs, NewInvalidFormatError("correct_option", q.CorrectOption))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsCorrect compares an already normalized option letter to the stored answer.
func (q *Question) IsCorrect(chosen string) bool {
	return chosen != "" && chosen == q.CorrectOption
}

// Option returns the text of the given option letter.
func (q *Question) Option(letter string) string {
	switch letter {
	case OptionA:
		return q.OptionA
	case OptionB:
		return q.OptionB
	case OptionC:
		return q.OptionC
	case OptionD:
		return q.OptionD
	default:
		return ""
	}
}

// SubjectLevel is one selectable (subject, level) pair.
type SubjectLevel struct {
	Subject string `json:"subject"`
	Level   string `json:"level"`
}

// GroupSubjectLevels maps each subject to its levels, preserving input order.
func GroupSubjectLevels(pairs []SubjectLevel) map[string][]string {
	grouped := make(map[string][]string)
	for _, p := range pairs {
		grouped[p.Subject] = append(grouped[p.Subject], p.Level)
	}
	return grouped
}

// SelectionMode controls whether previously answered questions are offered again.
type SelectionMode string

const (
	ModeNew SelectionMode = "new"
	ModeAll SelectionMode = "all"
)

// ParseSelectionMode accepts "new" or "all"; an empty value means "new".
func ParseSelectionMode(raw string) (SelectionMode, error) {
	switch SelectionMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeNew:
		return ModeNew, nil
	case ModeAll:
		return ModeAll, nil
	default:
		return "", ValidationErrors{NewInvalidFormatError("mode", raw)}
	}
}

// SelectionRequest describes which questions a user wants to take.
// A Limit of zero or less means no cap.
type SelectionRequest struct {
	UserID  string
	Subject string
	Level   string
	Limit   int
	Mode    SelectionMode
}

// Validate validates the selection request
func (r SelectionRequest) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(r.Subject) == "" {
		errs = append(errs, NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(r.Level) == "" {
		errs = append(errs, NewMissingFieldError("level"))
	}
	if r.Mode != ModeNew && r.Mode != ModeAll {
		errs = append(errs, NewInvalidFormatError("mode", r.Mode))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuestionRecord is one entry of an import file.
type QuestionRecord struct {
	Number        int    `json:"number"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

// ToQuestion builds the question stored for this record. position is the
// 1-based index of the record in its file and is used when Number is unset.
// An empty correct option defaults to A.
func (r QuestionRecord) ToQuestion(subject, level string, position int) *Question {
	number := r.Number
	if number <= 0 {
		number = position
	}
	correct := OptionA
	if strings.TrimSpace(r.CorrectOption) != "" {
		correct = NormalizeOption(r.CorrectOption)
	}
	return &Question{
		Subject:       subject,
		Level:         level,
		Number:        number,
		Text:          strings.TrimSpace(r.QuestionText),
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectOption: correct,
		Explanation:   r.Explanation,
	}
}

// ImportReport summarises one import run for a (subject, level) bank.
type ImportReport struct {
	Subject string
	Level   string
	Added   int
	Skipped int
	Invalid int
}

func (r ImportReport) String() string {
	return fmt.Sprintf("%s - %s: added=%d skipped=%d invalid=%d", r.Subject, r.Level, r.Added, r.Skipped, r.Invalid)
}

// QuestionRepository defines the interface for question persistence.
// GetQuestionByID returns (nil, nil) when the id is unknown.
type QuestionRepository interface {
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	// ListQuestions returns the bank ordered by number; limit <= 0 means no cap.
	ListQuestions(ctx context.Context, subject, level string, limit int) ([]*Question, error)
	// ListUnansweredQuestions is ListQuestions minus every question the user
	// has an answer for in any attempt.
	ListUnansweredQuestions(ctx context.Context, userID, subject, level string, limit int) ([]*Question, error)
	ListSubjectLevels(ctx context.Context) ([]SubjectLevel, error)
	ExistsByNumber(ctx context.Context, subject, level string, number int) (bool, error)
	SaveQuestion(ctx context.Context, question *Question) error
}
