package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/ActiveState/hostinfo/cmd/hostinfo/internal/cmdtree"
	"github.com/ActiveState/hostinfo/internal/config"
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

func main() {
	var exitCode int
	defer func() {
		// Handle panics gracefully, and ensure that we exit with non-zero code
		if r := recover(); r != nil {
			logging.Error("%v - caught panic", r)
			logging.Debug("Panic: %v\n%s", r, string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", r)
			exitCode = 1
		}

		logging.Close()
		os.Exit(exitCode)
	}()

	logging.BridgeStdLog(logging.DEBUG)

	exitCode = run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(stderr, "Could not load config: %s\n", errs.JoinMessage(err, ": "))
		return 1
	}

	tree := cmdtree.New(cfg, stdout, stderr)
	err = tree.Execute(args)
	if err == nil {
		return 0
	}

	exitCode, err := unwrapError(err)
	if err != nil {
		tree.Output().Error(errorMessage(err))
	}
	return exitCode
}
