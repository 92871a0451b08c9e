// Package apperror maps domain failures onto HTTP responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is a stable machine-readable error identifier.
type Code string

const (
	CodeValidation Code = "VALIDATION_FAILED"
	CodeNotFound   Code = "NOT_FOUND"
	CodeTooLarge   Code = "PAYLOAD_TOO_LARGE"
	CodeInternal   Code = "INTERNAL"
)

// InternalMessage is returned for any unexpected failure. It always carries the
// emergency numbers so a failed request still leaves the user with guidance.
const InternalMessage = "Unable to complete the request right now. If this is an emergency, call 102 (Ambulance) or 108 (Emergency Services)."

type Error struct {
	Code    Code
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

func TooLarge() *Error {
	return &Error{Code: CodeTooLarge, Message: "Request body too large", Status: http.StatusRequestEntityTooLarge}
}

// Internal hides err from the client behind InternalMessage.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: InternalMessage, Status: http.StatusInternalServerError, Err: err}
}

// WithMessage returns a copy of e with a different client-facing message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// From normalises any error into an *Error. Unknown errors become Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Respond writes {"error": message} with the status of err. Internal causes
// are attached to the gin context so the logging middleware can report them.
func Respond(c *gin.Context, err error) {
	appErr := From(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.Message})
}
