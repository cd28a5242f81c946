// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import "github.com/labstack/echo/v4"

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSONError writes a JSON error payload with the given status code.
func JSONError(c echo.Context, status int, message, details string) error {
	return c.JSON(status, jsonError{Error: message, Details: details})
}
