package captain

import (
	"strings"

	"github.com/ActiveState/hostinfo/internal/errs"
)

func rationalizeError(err error) error {
	switch {
	case err == nil:
		return nil

	// Do not modify an existing user-facing error.
	case errs.IsUserFacing(err):
		return err

	// cobra reports unknown commands and flags with plain errors
	case strings.HasPrefix(err.Error(), "unknown command "),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		return errs.WrapExitCode(errs.WrapUserFacing(err, err.Error(), errs.SetInput()), ExitCodeUsage)
	}

	return err
}

// rationalizeFlagError turns pflag parse errors, eg. `invalid argument "x" for "-o, --output" flag: ...`, into
// user-facing input errors
func rationalizeFlagError(err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, "invalid argument ") {
		segments := strings.SplitN(msg, ": ", 2)
		flagText := "{unknown flag}"
		if subsegs := strings.SplitN(segments[0], "for ", 2); len(subsegs) > 1 {
			flagText = strings.Trim(strings.TrimSuffix(subsegs[1], " flag"), `"`)
		}
		reason := "unknown error"
		if len(segments) > 1 {
			reason = segments[1]
		}
		msg = "Invalid value for " + flagText + ": " + reason
	}
	return errs.WrapExitCode(errs.WrapUserFacing(err, msg, errs.SetInput()), ExitCodeUsage)
}
