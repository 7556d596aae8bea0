package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ActiveState/hostinfo/internal/osutils/stacktrace"
	"github.com/ActiveState/hostinfo/internal/rtutils"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() *stacktrace.Stacktrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   *stacktrace.Stacktrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() *stacktrace.Stacktrace {
	return e.stack
}

func newError(err string, wrapTarget error) error {
	return &WrappedErr{
		err,
		wrapTarget,
		stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// JoinMessage returns the messages of the entire Unwrap stack joined by sep
func JoinMessage(err error, sep string) string {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return strings.Join(message, sep)
}

// Matches is an analog for errors.As that just checks whether err matches the given type, so you can do:
// errs.Matches(err, &ErrStruct{})
// Without having to first assign it to a variable
func Matches(err error, target interface{}) bool {
	if target == nil {
		panic("target cannot be nil")
	}
	for _, candidate := range Unpack(err) {
		if fmt.Sprintf("%T", candidate) == fmt.Sprintf("%T", target) {
			return true
		}
	}
	return false
}
