// Package errors carries the coded failures shared by generation, storage
// and the CLI. Generation only fails on caller mistakes; storage adds the
// lookup and connectivity codes.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
)

// Code names a failure class
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"
	CodeUnavailable     Code = "unavailable"
)

// Error pairs a message with a Code. Meta holds IDs such as persona_id or
// restore_id that a log line or caller may want without parsing Message.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta records key on e and returns e
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

// LogValue renders the code and meta as a slog group, so
// logger.Error("...", "error", err) keeps them as fields.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Meta)+2)
	attrs = append(attrs, slog.String("code", string(e.Code)), slog.String("msg", e.Error()))
	for k, v := range e.Meta {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

func newf(code Code, format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Code: code, Message: format}
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(message string) *Error { return newf(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

func NotFoundf(format string, args ...any) *Error { return newf(CodeNotFound, format, args...) }

func AlreadyExistsf(format string, args ...any) *Error {
	return newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error { return newf(CodeInternal, format, args...) }

// Wrap puts message in front of err. A coded err keeps its code and a copy
// of its meta; anything else becomes CodeUnknown. A nil err stays nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	out := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if coded, ok := as(err); ok {
		out.Code = coded.Code
		out.Meta = maps.Clone(coded.Meta)
	}
	return out
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code replaced, e.g. a redis dial failure
// reported as CodeUnavailable
func WrapWithCode(err error, code Code, message string) *Error {
	out := Wrap(err, message)
	if out != nil {
		out.Code = code
	}
	return out
}

func as(err error) (*Error, bool) {
	var coded *Error
	ok := errors.As(err, &coded)
	return coded, ok
}

// GetCode is the outermost code in err's chain, or CodeUnknown
func GetCode(err error) Code {
	if coded, ok := as(err); ok {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta is the meta of the outermost coded error in err's chain
func GetMeta(err error) map[string]any {
	if coded, ok := as(err); ok {
		return coded.Meta
	}
	return nil
}

// Is reports whether err carries code
func Is(err error, code Code) bool {
	coded, ok := as(err)
	return ok && coded.Code == code
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
