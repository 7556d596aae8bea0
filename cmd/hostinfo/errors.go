package main

import (
	"errors"
	"strings"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

type inputError interface {
	InputError() bool
}

type tipsError interface {
	ErrorTips() []string
}

func unwrapError(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var ee errs.Error
	stack := "not provided"
	if errors.As(err, &ee) {
		stack = ee.Stack().String()
	}

	// Log error if this isn't a user input error
	if !isInputError(err) {
		logging.Error("Returning error:\n%s\nCreated at:\n%s", errs.JoinMessage(err, "\n"), stack)
	}

	code := errs.UnwrapExitCode(err)

	if errs.IsSilent(err) {
		logging.Debug("Suppressing silent failure: %v", err.Error())
		err = nil
	}

	return code, err
}

func isInputError(err error) bool {
	var ie inputError
	return errors.As(err, &ie) && ie.InputError()
}

// errorMessage prefers the user facing message, followed by its tips
func errorMessage(err error) string {
	var ufe errs.UserFacingError
	if !errors.As(err, &ufe) {
		return errs.JoinMessage(err, ": ")
	}

	msg := ufe.UserError()
	var te tipsError
	if errors.As(err, &te) && len(te.ErrorTips()) > 0 {
		msg += "\n\nTips:\n - " + strings.Join(te.ErrorTips(), "\n - ")
	}
	return msg
}
