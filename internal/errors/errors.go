// Package errors writes the uniform response envelope shared by every
// endpoint: {"success": bool, "data": payload|null, "error": string|null}.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Default messages
const (
	MsgUnauthorized  = "Authentication required"
	MsgNotFound      = "Resource not found"
	MsgInvalidInput  = "Invalid request"
	MsgConflict      = "Resource conflict"
	MsgInternalError = "Internal server error"
	MsgRouteNotFound = "Route not found"
)

// Envelope is the body of every API response
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// Success sends a successful response carrying data
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// RespondWithError sends a failed response
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Error: &message})
}

// AbortWithError sends a failed response and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, message string) {
	RespondWithError(c, statusCode, message)
	c.Abort()
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	RespondWithError(c, http.StatusUnauthorized, orDefault(message, MsgUnauthorized))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, orDefault(message, MsgNotFound))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, orDefault(message, MsgInvalidInput))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	RespondWithError(c, http.StatusConflict, orDefault(message, MsgConflict))
}

// InternalError records err on the context for the request logger and sends
// a 500 response. The error text is only exposed in debug mode.
func InternalError(c *gin.Context, err error) {
	message := MsgInternalError
	if err != nil {
		_ = c.Error(err)
		if gin.IsDebugging() {
			message = err.Error()
		}
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
