package core

import (
	"errors"
	"fmt"
	"os"
)

// Error kind codes shared by every subsystem (spec.md §7).
const (
	NOERROR               int = 0
	EIO                   int = 100 // file missing or unreadable
	EINVALIDFILE          int = 101 // header mismatch, truncation
	EPARSEINT             int = 102 // numeric field malformed
	EPARSEFLOAT           int = 103 // numeric field malformed
	EUNKNOWNIT            int = 104 // aupadeshika marker not in the known set
	EMISSINGFIELD         int = 105 // argument-builder contract violation
	EENUMPARSE            int = 106 // input string not in closed set
	EINVALIDUPADESHA      int = 107 // term initialization failure
	EUNKNOWNDHATUID       int = 108 // kosha registry dereference past end
	EUNKNOWNPRATIPADIKAID int = 109 // kosha registry dereference past end
	EABORT                int = 110 // current derivation path inadmissible
	ESANDHI               int = 111 // wrapped sandhi subsystem error
	EKOSHA                int = 112 // wrapped kosha subsystem error
	ECSV                  int = 113 // wrapped CSV subsystem error
	EINTERNAL             int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EIO:
		return "I/O error"
	case EINVALIDFILE:
		return "invalid file"
	case EPARSEINT:
		return "integer parse error"
	case EPARSEFLOAT:
		return "float parse error"
	case EUNKNOWNIT:
		return "unknown it-marker"
	case EMISSINGFIELD:
		return "missing required field"
	case EENUMPARSE:
		return "enum parse error"
	case EINVALIDUPADESHA:
		return "invalid upadesha"
	case EUNKNOWNDHATUID:
		return "unknown dhatu id"
	case EUNKNOWNPRATIPADIKAID:
		return "unknown pratipadika id"
	case EABORT:
		return "derivation aborted"
	case ESANDHI:
		return "sandhi error"
	case EKOSHA:
		return "kosha error"
	case ECSV:
		return "csv error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, the wrapped error is a new error carrying code's own
// error text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks Code and returns that code's text.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
