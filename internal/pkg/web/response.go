package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"

	errx "github.com/ferdiebergado/gatekeep/internal/pkg/error"
	"github.com/ferdiebergado/gatekeep/internal/pkg/message"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// OKResponse represents the structure of a JSON-encoded success response.
//
// It includes an optional message and optional data payload. The generic type
// parameter T allows OKResponse to carry arbitrary response data.
//
// The Data field is omitted from the response if it is nil.
type OKResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field paths to
// the ordered list of violations for that field. The Errors field is omitted
// from the response if empty.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK writes a JSON-encoded success response to w with the provided HTTP status code.
//
// If msg is non-nil, its value is included in the response under the "message" field.
// If data is non-nil, it is included under the "data" field.
//
// Example usage:
//
//	msg := "User registered successfully"
//	OK(w, http.StatusCreated, &msg, &payload)
//
// The JSON response has the form:
//
//	{
//	  "success": true,
//	  "message": "User registered successfully",
//	  "data": {...}
//	}
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &OKResponse[*T]{Success: true}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged and never written to the client. Server errors are
// logged at Error level, everything else at Warn.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string][]string) {
	switch {
	case errx.IsContextError(reason):
		slog.Warn("request aborted", "reason", reason)
	case status >= http.StatusInternalServerError:
		slog.Error("request failed", "reason", reason)
	default:
		slog.Warn("request rejected", "status", status, "reason", reason)
	}

	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}

func RespondOK[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusCreated, msg, data)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusBadRequest, err, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusUnauthorized, err, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusNotFound, err, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, errs)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, err error, msg string, errs map[string][]string) {
	Fail(w, http.StatusUnprocessableEntity, err, msg, errs)
}

// RespondInternalServerError hides the reason behind a generic message.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.InternalError, nil)
}
