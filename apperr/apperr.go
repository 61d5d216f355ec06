// Package apperr defines the request error taxonomy and its mapping to
// HTTP status codes. Every failed operation is terminal for the request:
// handlers translate a returned *Error straight into the response and any
// other error into a generic 500 with no internal detail exposed.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a request-terminal failure carrying the HTTP status it maps to.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation — malformed or missing input.
func Validation(msg string) *Error { return &Error{Code: http.StatusBadRequest, Message: msg} }

// Auth — missing, invalid, or expired credential.
func Auth(msg string) *Error { return &Error{Code: http.StatusUnauthorized, Message: msg} }

// Forbidden — valid credential, wrong role.
func Forbidden(msg string) *Error { return &Error{Code: http.StatusForbidden, Message: msg} }

// Conflict — duplicate unique key.
func Conflict(msg string) *Error { return &Error{Code: http.StatusConflict, Message: msg} }

// NotFound — unknown id, or an id not visible to the actor. Ownership
// checks collapse "not found" and "not yours" into this same error so
// existence is never leaked to unauthorized actors.
func NotFound(msg string) *Error { return &Error{Code: http.StatusNotFound, Message: msg} }

// State — operation invalid for the entity's current lifecycle state.
func State(msg string) *Error { return &Error{Code: http.StatusBadRequest, Message: msg} }

// Write renders err as the standard {"error": message} body. Errors
// outside the taxonomy render as a generic 500.
func Write(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}
