// Package errors provides the error values the API handlers convert failures
// into. Each value knows the HTTP status it should be written with and
// serializes itself as the response envelope used by every endpoint.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"go.vocdoni.io/dvote/log"
)

// Error is used by handler functions to wrap errors, assigning a unique error
// code and also specifying which HTTP Status should be used.
type Error struct {
	Err        error          // Original error
	Code       int            // Error code
	HTTPstatus int            // HTTP status code to return
	Data       map[string]any // Optional data to include in the error response
}

// MarshalJSON returns the response envelope built from the error: success is
// always false, the message is Err.Error() and data carries whatever was
// attached with WithData. Fields Code and HTTPstatus are for logs only.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		struct {
			Success bool           `json:"success"`
			Message string         `json:"message"`
			Data    map[string]any `json:"data,omitempty"`
		}{
			Success: false,
			Message: e.Err.Error(),
			Data:    e.Data,
		})
}

// Error returns the message contained inside the Error.
func (e Error) Error() string {
	return e.Err.Error()
}

// Write serializes the envelope and writes it with the error's HTTP status.
// A status of 204 produces an empty body, as No Content requires.
func (e Error) Write(w http.ResponseWriter) {
	if e.HTTPstatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	msg, err := json.Marshal(e)
	if err != nil {
		log.Warn(err)
		http.Error(w, "marshal failed", http.StatusInternalServerError)
		return
	}

	pc, file, line, _ := runtime.Caller(1)
	caller := runtime.FuncForPC(pc).Name()
	if e.HTTPstatus >= 500 {
		log.Errorw(e.Err, fmt.Sprintf("API error response [%d]: %s (code: %d, caller: %s, file: %s:%d)",
			e.HTTPstatus, e.Error(), e.Code, caller, file, line))
	} else if log.Level() == log.LogLevelDebug {
		log.Debugw(fmt.Sprintf("API error response [%d]: %s (code: %d, caller: %s)",
			e.HTTPstatus, e.Error(), e.Code, caller))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPstatus)
	if _, err := w.Write(msg); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}

// Withf returns a copy of Error with the Sprintf formatted string appended at
// the end of e.Err
func (e Error) Withf(format string, args ...any) Error {
	return Error{
		Err:        fmt.Errorf("%w: %v", e.Err, fmt.Sprintf(format, args...)),
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
		Data:       e.Data,
	}
}

// With returns a copy of Error with the string appended at the end of e.Err
func (e Error) With(s string) Error {
	return Error{
		Err:        fmt.Errorf("%w: %v", e.Err, s),
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
		Data:       e.Data,
	}
}

// WithErr returns a copy of Error with err.Error() appended at the end of
// e.Err, and the underlying error exposed in the response data.
func (e Error) WithErr(err error) Error {
	return Error{
		Err:        e.Err,
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
		Data:       map[string]any{"error": err.Error()},
	}
}

// WithData returns a copy of Error carrying the given response data.
func (e Error) WithData(data map[string]any) Error {
	return Error{
		Err:        e.Err,
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
		Data:       data,
	}
}
