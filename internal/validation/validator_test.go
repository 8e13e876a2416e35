package validation

import (
	"errors"
	"testing"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}))

	err := v.Struct(dto.RegisterRequest{Username: "al", Email: "not-an-email", Password: ""})
	require.Error(t, err)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)

	byField := map[string]domain.ValidationError{}
	for _, e := range verrs {
		byField[e.Field] = e
	}
	assert.Equal(t, domain.CodeValidation, byField["username"].Code)
	assert.Equal(t, domain.CodeInvalidFormat, byField["email"].Code)
	assert.Equal(t, domain.CodeMissingField, byField["password"].Code)
}

func TestParseLimit(t *testing.T) {
	n, err := ParseLimit("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ParseLimit("0", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = ParseLimit("-5", 10)
	require.NoError(t, err)
	assert.Equal(t, -5, n)

	_, err = ParseLimit("ten", 10)
	assert.Error(t, err)
}
