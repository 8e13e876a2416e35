package service

import (
	"context"
	"errors"
	"testing"

	"mcq-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mathQuestions() []*domain.Question {
	return []*domain.Question{
		{ID: "q1", Subject: "Math", Level: "Easy", Number: 1, Text: "1+1?", CorrectOption: "A", Explanation: "two"},
		{ID: "q2", Subject: "Math", Level: "Easy", Number: 2, Text: "2+2?", CorrectOption: "B"},
	}
}

func TestQuizService_SelectQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("new mode excludes answered questions", func(t *testing.T) {
		questions := new(MockQuestionRepository)
		svc := NewQuizService(questions, new(MockAttemptRepository), &MockTransactionManager{})
		questions.On("ListUnansweredQuestions", ctx, "user-1", "Math", "Easy", 2).Return(mathQuestions(), nil)

		got, err := svc.SelectQuestions(ctx, domain.SelectionRequest{UserID: "user-1", Subject: "Math", Level: "Easy", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		questions.AssertNotCalled(t, "ListQuestions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("all mode lists the whole bank", func(t *testing.T) {
		questions := new(MockQuestionRepository)
		svc := NewQuizService(questions, new(MockAttemptRepository), &MockTransactionManager{})
		questions.On("ListQuestions", ctx, "Math", "Easy", 0).Return(mathQuestions(), nil)

		got, err := svc.SelectQuestions(ctx, domain.SelectionRequest{UserID: "user-1", Subject: "Math", Level: "Easy", Mode: domain.ModeAll})
		require.NoError(t, err)
		assert.Equal(t, "q1", got[0].ID)
	})

	t.Run("empty selection is not an error", func(t *testing.T) {
		questions := new(MockQuestionRepository)
		svc := NewQuizService(questions, new(MockAttemptRepository), &MockTransactionManager{})
		questions.On("ListUnansweredQuestions", ctx, "user-1", "Math", "Easy", 10).Return(nil, nil)

		got, err := svc.SelectQuestions(ctx, domain.SelectionRequest{UserID: "user-1", Subject: "Math", Level: "Easy", Limit: 10, Mode: domain.ModeNew})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc := NewQuizService(new(MockQuestionRepository), new(MockAttemptRepository), &MockTransactionManager{})
		_, err := svc.SelectQuestions(ctx, domain.SelectionRequest{Subject: "Math", Mode: "random"})
		var verrs domain.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("repository failure", func(t *testing.T) {
		questions := new(MockQuestionRepository)
		svc := NewQuizService(questions, new(MockAttemptRepository), &MockTransactionManager{})
		questions.On("ListQuestions", ctx, "Math", "Easy", 5).Return(nil, errors.New("db down"))

		_, err := svc.SelectQuestions(ctx, domain.SelectionRequest{Subject: "Math", Level: "Easy", Limit: 5, Mode: domain.ModeAll})
		var derr *domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.CodeInternal, derr.Code)
	})
}

// Alice answers question 1 correctly (A) and question 2 incorrectly (C, correct B).
func TestQuizService_SubmitAttempt_Scores(t *testing.T) {
	ctx := context.Background()
	questions := new(MockQuestionRepository)
	attempts := new(MockAttemptRepository)
	tx := &MockTransactionManager{}
	svc := NewQuizService(questions, attempts, tx)
	qs := mathQuestions()

	attempts.On("CreateAttempt", ctx, mock.MatchedBy(func(a *domain.Attempt) bool {
		return a.Score == 0 && a.TotalQuestions == 2 && a.UserID == "alice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Attempt).ID = "attempt-1"
	}).Return(nil)
	questions.On("GetQuestionByID", ctx, "q1").Return(qs[0], nil)
	questions.On("GetQuestionByID", ctx, "q2").Return(qs[1], nil)
	attempts.On("CreateAnswer", ctx, &domain.Answer{AttemptID: "attempt-1", QuestionID: "q1", ChosenOption: "A", IsCorrect: true}).Return(nil)
	attempts.On("CreateAnswer", ctx, &domain.Answer{AttemptID: "attempt-1", QuestionID: "q2", ChosenOption: "C", IsCorrect: false}).Return(nil)
	attempts.On("UpdateAttemptScore", ctx, "attempt-1", 1).Return(nil)

	result, err := svc.SubmitAttempt(ctx, domain.Submission{
		UserID:      "alice",
		Subject:     "Math",
		Level:       "Easy",
		QuestionIDs: []string{"q1", "q2"},
		Chosen:      map[string]string{"q1": "a", "q2": " c "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Attempt.Score)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].IsCorrect)
	assert.False(t, result.Results[1].IsCorrect)
	assert.Equal(t, 1, tx.Committed)
	attempts.AssertExpectations(t)
}

func TestQuizService_SubmitAttempt_UnansweredAndStale(t *testing.T) {
	ctx := context.Background()
	questions := new(MockQuestionRepository)
	attempts := new(MockAttemptRepository)
	svc := NewQuizService(questions, attempts, &MockTransactionManager{})
	qs := mathQuestions()

	attempts.On("CreateAttempt", ctx, mock.MatchedBy(func(a *domain.Attempt) bool {
		return a.TotalQuestions == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Attempt).ID = "attempt-2"
	}).Return(nil)
	questions.On("GetQuestionByID", ctx, "q1").Return(qs[0], nil)
	questions.On("GetQuestionByID", ctx, "q2").Return(qs[1], nil)
	questions.On("GetQuestionByID", ctx, "stale").Return(nil, nil)
	attempts.On("CreateAnswer", ctx, &domain.Answer{AttemptID: "attempt-2", QuestionID: "q1", ChosenOption: "", IsCorrect: false}).Return(nil)
	attempts.On("CreateAnswer", ctx, &domain.Answer{AttemptID: "attempt-2", QuestionID: "q2", ChosenOption: "", IsCorrect: false}).Return(nil)
	attempts.On("UpdateAttemptScore", ctx, "attempt-2", 0).Return(nil)

	result, err := svc.SubmitAttempt(ctx, domain.Submission{
		UserID:      "alice",
		Subject:     "Math",
		Level:       "Easy",
		QuestionIDs: []string{"q1", "q2", "stale", "q1", ""},
		Chosen:      map[string]string{"q2": "Z"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Results, 2)
	attempts.AssertNumberOfCalls(t, "CreateAnswer", 2)
}

func TestQuizService_SubmitAttempt_Invalid(t *testing.T) {
	ctx := context.Background()
	attempts := new(MockAttemptRepository)
	svc := NewQuizService(new(MockQuestionRepository), attempts, &MockTransactionManager{})

	_, err := svc.SubmitAttempt(ctx, domain.Submission{Subject: "Math", Level: "Easy", QuestionIDs: []string{" ", ""}})
	assert.ErrorIs(t, err, domain.ErrInvalidSubmission)

	_, err = svc.SubmitAttempt(ctx, domain.Submission{QuestionIDs: []string{"q1"}})
	var verrs domain.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	attempts.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestQuizService_SubmitAttempt_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	questions := new(MockQuestionRepository)
	attempts := new(MockAttemptRepository)
	tx := &MockTransactionManager{}
	svc := NewQuizService(questions, attempts, tx)

	attempts.On("CreateAttempt", ctx, mock.Anything).Return(nil)
	questions.On("GetQuestionByID", ctx, "q1").Return(nil, errors.New("db down"))

	_, err := svc.SubmitAttempt(ctx, domain.Submission{Subject: "Math", Level: "Easy", QuestionIDs: []string{"q1"}})
	require.Error(t, err)
	assert.Equal(t, 0, tx.Committed)
	attempts.AssertNotCalled(t, "UpdateAttemptScore", mock.Anything, mock.Anything, mock.Anything)
}
