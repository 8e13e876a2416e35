package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("username")}, http.StatusBadRequest, string(domain.CodeValidation)},
		{"duplicate user", domain.ErrDuplicateUser, http.StatusConflict, string(domain.CodeDuplicateUser)},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, string(domain.CodeInvalidCredentials)},
		{"invalid submission", domain.NewInvalidSubmissionError("Invalid submission"), http.StatusBadRequest, string(domain.CodeInvalidSubmission)},
		{"not found", domain.NewNotFoundError("gone"), http.StatusNotFound, string(domain.CodeNotFound)},
		{"internal", domain.NewInternalError("boom", errors.New("db")), http.StatusInternalServerError, string(domain.CodeInternal)},
		{"fiber", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("???"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body["code"])
		})
	}
}

func TestErrorHandler_HidesInternalMessage(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error {
		return domain.NewInternalError("Failed to save attempt", errors.New("ORA-12541: no listener"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
}
