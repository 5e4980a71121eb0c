package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/handler"
	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and machine code.
//   - Logs unexpected errors internally without leaking details.
//   - Renders the uniform envelope {"data": null, "error": {message, code}}.
//
// Owner-scope violations arrive here already collapsed into not-found
// errors, so the response never reveals whether a row exists.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, apiErr := resolveError(err, log, c)
		_ = c.JSON(status, handler.Envelope{Error: apiErr})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, *handler.APIError) {
	// Per-field validation failure: blocked before any write.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, &handler.APIError{Message: ve.Message, Code: "validation_error"}
	}

	// Echo's own errors (bind failures, 404 from router, middleware 401/403).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := "internal_error"
		switch he.Code {
		case http.StatusBadRequest:
			code = "validation_error"
		case http.StatusUnauthorized:
			code = "unauthorized"
		case http.StatusForbidden:
			code = "forbidden"
		case http.StatusNotFound:
			code = "not_found"
		}
		return he.Code, &handler.APIError{Message: fmt.Sprintf("%v", he.Message), Code: code}
	}

	// Known domain errors → deterministic status + code.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, &handler.APIError{Message: "invalid credentials", Code: "invalid_credentials"}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, &handler.APIError{Message: "email already registered", Code: "email_taken"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, &handler.APIError{Message: "access forbidden", Code: "forbidden"}
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, &handler.APIError{Message: "task not found", Code: "not_found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, &handler.APIError{Message: "user not found", Code: "not_found"}
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, &handler.APIError{Message: "profile not found", Code: "not_found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, &handler.APIError{Message: "internal server error", Code: "internal_error"}
}
