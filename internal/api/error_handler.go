package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	apperrors "todo-api/internal/errors"
	"todo-api/internal/validation"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewErrorHandler maps errors returned by handlers to HTTP responses.
// Client errors are answered quietly; everything else is logged.
func NewErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if shouldLog(err, status) {
			logger.WithError(err).WithFields(logFields(err, c, status)).Error("request failed")
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(status)
		} else {
			sendErr = c.JSON(status, body)
		}
		if sendErr != nil {
			logger.WithError(sendErr).Warn("failed to write error response")
		}
	}
}

func errorResponse(err error) (int, ErrorResponse) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok && m != "" {
			message = m
		}
		return httpErr.Code, ErrorResponse{Message: message}
	}

	body := ErrorResponse{
		Message: apperrors.UserMessage(err),
		Code:    apperrors.Code(err),
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			body.Errors = ve.FieldMessages()
		}
		return http.StatusBadRequest, body
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest, body
	case apperrors.KindNotFound:
		return http.StatusNotFound, body
	default:
		return http.StatusInternalServerError, body
	}
}

func shouldLog(err error, status int) bool {
	if _, ok := apperrors.As(err); ok {
		return !apperrors.IsClient(err)
	}
	return status >= http.StatusInternalServerError
}

// logFields describes the failed request. Storage errors also get the
// request id recorded on them, next to the fields they already carry.
func logFields(err error, c echo.Context, status int) log.Fields {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	fields := log.Fields{
		"method":     c.Request().Method,
		"uri":        c.Request().RequestURI,
		"status":     status,
		"request_id": requestID,
	}
	if appErr, ok := apperrors.As(err); ok {
		appErr.With("request_id", requestID)
		for key, value := range appErr.Fields {
			fields[key] = value
		}
	}
	return fields
}
