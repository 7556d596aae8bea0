package errs

import (
	"errors"
)

// Unpack will recursively unpack an error into a list of errors, which is useful if you need to iterate over all errors.
// This is similar to errors.Unwrap, but will also "unwrap" errors that are joined with errors.Join.
func Unpack(err error) []error {
	result := []error{}

	for err != nil {
		result = append(result, err)

		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				result = append(result, Unpack(e)...)
			}
			break
		}

		err = errors.Unwrap(err)
	}

	return result
}

// UnwrapExitCode checks if the given error carries an exit code and returns it. Errors without one map to 1.
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
