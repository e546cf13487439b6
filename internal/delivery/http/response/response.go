// Package response defines the wire shapes shared by handlers and middleware.
package response

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the envelope every failed request returns. Success responses
// carry their payload directly, without a wrapper.
type ErrorBody struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Error writes the error envelope with the given status.
func Error(c echo.Context, statusCode int, message, details string) error {
	return c.JSON(statusCode, ErrorBody{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	})
}

// JSON writes a success payload as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty success response.
func NoContent(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}
