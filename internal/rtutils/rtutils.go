package rtutils

import "runtime"

// Returns path of currently running Go file
func CurrentFile() string {
	pc := make([]uintptr, 2)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return ""
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	frame, _ := frames.Next()
	frame, _ = frames.Next() // Skip rtutils.go

	return frame.File
}

// Closer is useful when you have a deferred close call that returns an error. It prepends the close error to any
// error already being returned.
func Closer(closer func() error, rerr *error) {
	err := closer()
	if err != nil {
		if *rerr == nil {
			*rerr = err
			return
		}
		*rerr = &closeError{err, *rerr}
	}
}

type closeError struct {
	closeErr error
	wrapped  error
}

func (e *closeError) Error() string {
	return e.closeErr.Error() + ": " + e.wrapped.Error()
}

func (e *closeError) Unwrap() error {
	return e.wrapped
}
