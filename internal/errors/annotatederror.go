// Package errors annotates errors with [slog.Attr] and the source location where they were created or wrapped.
//
// It is a drop-in replacement for the standard library errors package. Use [SlogError] to turn an error chain
// into a structured log attribute.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strconv"
)

// annotatedError carries a message, structured annotations and the location it was created at.
type annotatedError struct {
	err        error
	msg        string
	attrs      []slog.Attr
	source     string
	stackTrace string
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerSource returns file:line of the function skip frames above the caller of callerSource.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}

// New creates an annotated error with the caller's source location.
//
// Use [NewSentinel] for package-level sentinel errors instead, their source location is meaningless.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		err:        nil,
		msg:        msg,
		attrs:      attrs,
		source:     callerSource(1),
		stackTrace: "",
	}
}

// NewSentinel creates a plain error meant to be compared with [Is].
func NewSentinel(msg string) error {
	return stderrors.New(msg) //nolint:err113 // this is the sentinel constructor
}

// Wrap annotates err with msg and attrs. It returns nil if err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		err:        err,
		msg:        msg,
		attrs:      attrs,
		source:     callerSource(1),
		stackTrace: "",
	}
}

// DecoratePanic converts a recovered panic value into an error carrying the stack trace.
// Call it directly inside the deferred function that recovers. It returns nil for a nil panic value.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	var cause error
	switch v := excp.(type) {
	case error:
		cause = v
	case string:
		cause = stderrors.New(v) //nolint:err113 // panic message
	default:
		cause = fmt.Errorf("%v", v) //nolint:err113 // panic message
	}
	return &annotatedError{
		err:        cause,
		msg:        "panic",
		attrs:      nil,
		source:     callerSource(1),
		stackTrace: string(debug.Stack()),
	}
}

// SlogError returns the error as a [slog.Attr] group with the message, all annotations of the chain and the source
// location of the innermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var (
		annotations []any
		source      string
		stackTrace  string
	)
	walk(err, func(e *annotatedError) {
		for _, attr := range e.attrs {
			annotations = append(annotations, attr)
		}
		if e.source != "" {
			source = e.source
		}
		if e.stackTrace != "" {
			stackTrace = e.stackTrace
		}
	})

	attrs := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if stackTrace != "" {
		attrs = append(attrs, slog.String("stack_trace", stackTrace))
	}
	return slog.Group("error", attrs...)
}

// walk visits every annotated error in the chain including joined errors, outermost first.
func walk(err error, visit func(*annotatedError)) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // we walk the chain manually
		visit(ae)
	}
	switch u := err.(type) { //nolint:errorlint // we walk the chain manually
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			walk(e, visit)
		}
	case interface{ Unwrap() error }:
		walk(u.Unwrap(), visit)
	}
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
