package models

import "database/sql"

// Question is a row of the questions table. level and number are stored as
// quiz_level and question_number, which are reserved words in Oracle.
type Question struct {
	ID             string         `db:"id"`
	Subject        string         `db:"subject"`
	QuizLevel      string         `db:"quiz_level"`
	QuestionNumber int            `db:"question_number"`
	QuestionText   string         `db:"question_text"`
	OptionA        string         `db:"option_a"`
	OptionB        string         `db:"option_b"`
	OptionC        string         `db:"option_c"`
	OptionD        string         `db:"option_d"`
	CorrectOption  string         `db:"correct_option"`
	Explanation    sql.NullString `db:"explanation"`
}

var QuestionColumns = []string{
	"id", "subject", "quiz_level", "question_number", "question_text",
	"option_a", "option_b", "option_c", "option_d", "correct_option", "explanation",
}

// SubjectLevel is one row of the distinct (subject, level) listing.
type SubjectLevel struct {
	Subject   string `db:"subject"`
	QuizLevel string `db:"quiz_level"`
}
