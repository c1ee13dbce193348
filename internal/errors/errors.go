// Package errors provides standardized error handling for the pd application.
// It defines common error types, constants, and helper functions for consistent
// error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrUnknownKeymap  = NewConfigError("unrecognized keymap", "", UnknownKeymap, nil)
	ErrNotInteractive = NewTermError("not a terminal", "stderr", NotInteractive, nil)
	ErrInputFailed    = NewTermError("input stream failed", "stdin", InputFailed, nil)
	ErrWorkdirFailed  = NewPathError("cannot resolve working directory", "", WorkdirFailed, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	UnknownKeymap
	// Terminal error kinds
	NotInteractive
	InputFailed
	// Path error kinds
	WorkdirFailed
	InvalidPath
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration values
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// TermError represents errors related to the interactive terminal
type TermError struct {
	ApplicationError
	stream string
}

// NewTermError creates a new terminal error
func NewTermError(msg string, stream string, kind ErrorKind, err error) *TermError {
	return &TermError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		stream: stream,
	}
}

// Error returns the terminal error message
func (e *TermError) Error() string {
	if e.stream != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.stream, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.stream)
	}
	return e.ApplicationError.Error()
}

// Stream returns the stream name associated with the error
func (e *TermError) Stream() string {
	return e.stream
}

// PathError represents errors related to path resolution
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf reports the first specific kind in the error chain. Wrapping an
// error with Wrap/Wrapf never hides the kind of what it wrapped.
func KindOf(err error) ErrorKind {
	for err != nil {
		if kinded, ok := err.(interface{ Kind() ErrorKind }); ok {
			if k := kinded.Kind(); k != Unknown {
				return k
			}
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsUnknownKeymap checks if the error is an unrecognized keymap error
func IsUnknownKeymap(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == UnknownKeymap
	}
	return false
}

// IsNotInteractive checks if the error reports a non-interactive terminal
func IsNotInteractive(err error) bool {
	var termErr *TermError
	if errors.As(err, &termErr) {
		return termErr.Kind() == NotInteractive
	}
	return false
}

// IsInputFailed checks if the error reports a dead input stream
func IsInputFailed(err error) bool {
	var termErr *TermError
	if errors.As(err, &termErr) {
		return termErr.Kind() == InputFailed
	}
	return false
}

// IsWorkdirFailed checks if the error reports an unresolvable working directory
func IsWorkdirFailed(err error) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind() == WorkdirFailed
	}
	return false
}

// IsFatal checks if the error must abort the session. Configuration
// problems are advisory; terminal and path failures are not.
func IsFatal(err error) bool {
	switch KindOf(err) {
	case NotInteractive, InputFailed, WorkdirFailed:
		return true
	}
	return false
}
