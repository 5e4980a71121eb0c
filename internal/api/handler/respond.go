package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response shape: exactly one of Data and Error
// is set, the other is null.
type Envelope struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// APIError is the error half of the envelope.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// respond writes a success envelope with the given payload. A nil data
// value is rendered as null (used by GET /auth/session with no session).
func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Data: data})
}
