package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-api/internal/errors"
	"todo-api/internal/validation"
)

func TestErrorResponse(t *testing.T) {
	ve := validation.NewValidationError()
	ve.Required("detail")

	tests := []struct {
		name     string
		err      error
		status   int
		expected ErrorResponse
	}{
		{
			name:   "validation",
			err:    apperrors.NewValidationError(validationFailedMessage, ve),
			status: http.StatusBadRequest,
			expected: ErrorResponse{
				Message: "Input payload validation failed",
				Code:    "VALIDATION_FAILED",
				Errors:  map[string]string{"detail": "detail is required"},
			},
		},
		{
			name:     "invalid input",
			err:      apperrors.NewInvalidInputError("id", "x", "not a number"),
			status:   http.StatusBadRequest,
			expected: ErrorResponse{Message: "invalid input for id: not a number", Code: "INVALID_INPUT"},
		},
		{
			name:     "not found",
			err:      apperrors.NewNotFoundError("Task", "99"),
			status:   http.StatusNotFound,
			expected: ErrorResponse{Message: "Task 99 doesn't exist", Code: "NOT_FOUND"},
		},
		{
			name:     "database",
			err:      apperrors.NewDatabaseError("get", errors.New("no such table: tasks")),
			status:   http.StatusInternalServerError,
			expected: ErrorResponse{Message: "A database error occurred. Please try again.", Code: "DATABASE_ERROR"},
		},
		{
			name:     "echo error",
			err:      echo.ErrNotFound,
			status:   http.StatusNotFound,
			expected: ErrorResponse{Message: "Not Found"},
		},
		{
			name:     "echo error without message",
			err:      echo.NewHTTPError(http.StatusTeapot),
			status:   http.StatusTeapot,
			expected: ErrorResponse{Message: http.StatusText(http.StatusTeapot)},
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			expected: ErrorResponse{Message: "An unexpected error occurred. Please try again.", Code: "UNKNOWN_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestNewErrorHandler_Logging(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		logged bool
	}{
		{"validation is quiet", apperrors.NewValidationError(validationFailedMessage, nil), false},
		{"not found is quiet", apperrors.NewNotFoundError("Task", "1"), false},
		{"route miss is quiet", echo.ErrNotFound, false},
		{"database is logged", apperrors.NewDatabaseError("insert", errors.New("disk full")), true},
		{"unknown is logged", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New()
			logger.SetOutput(&buf)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewErrorHandler(logger)(tt.err, c)

			if tt.logged {
				assert.Contains(t, buf.String(), "request failed")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/tasks/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorHandler(log.New())(apperrors.NewNotFoundError("Task", "1"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNewErrorHandler_LogsStorageFields(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&log.JSONFormatter{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/todos/", nil)
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "req-42")
	c := e.NewContext(req, rec)

	dbErr := apperrors.NewDatabaseError("execute query", errors.New("database is locked")).With("table", "todo")
	NewErrorHandler(logger)(dbErr, c)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "todo", entry["table"])
	assert.Equal(t, "execute query", entry["operation"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "req-42", dbErr.Fields["request_id"])

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "locked")
}
