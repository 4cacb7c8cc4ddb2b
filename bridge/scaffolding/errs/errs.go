// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error code in the system.
type ErrCode int

// Set of error codes the bridge layer can return.
const (
	OK ErrCode = iota
	InvalidArgument
	NotFound
	AlreadyExists
	Internal
	Unavailable

	// InternalOnlyLog marks errors whose detail must never reach the
	// client. The error middleware logs them and responds with a generic
	// Internal error.
	InternalOnlyLog
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	AlreadyExists:   "already_exists",
	Internal:        "internal",
	Unavailable:     "unavailable",
	InternalOnlyLog: "internal",
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	AlreadyExists:   http.StatusConflict,
	Internal:        http.StatusInternalServerError,
	Unavailable:     http.StatusServiceUnavailable,
	InternalOnlyLog: http.StatusInternalServerError,
}

func (c ErrCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// Error represents an error in the system.
type Error struct {
	Code     ErrCode `json:"code"`
	Message  string  `json:"message"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	type response struct {
		Error string `json:"error"`
	}

	data, err := json.Marshal(response{Error: e.Message})
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web httpStatus interface so the code is used as
// the response status.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsError tests whether err carries an *Error.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError extracts the *Error from err, or wraps it as Internal.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return New(Internal, err)
	}
	return er
}
