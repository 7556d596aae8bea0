// Package logging provides levelled logging for hostinfo. Messages are formatted like fmt.Sprintf:
//
//	logging.Debug("Identifying distribution from %s", path)
//
// which produces
//
//	[DEBUG 01:20:26.512 distribution.go:106] Identifying distribution from /etc/lsb-release
//
// Output is kept in memory (see Tail), and is also written to stderr in verbose mode and to a log file when one is
// set.
package logging

// This package may NOT depend on errs (directly or indirectly)

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/ActiveState/hostinfo/internal/osutils/stacktrace"
)

// Levels are bits, so any combination of them can be active
const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	ERROR    = 8
	NOTICE   = 16
	CRITICAL = 32
	QUIET    = ERROR | NOTICE | CRITICAL
	NORMAL   = INFO | WARNING | ERROR | NOTICE | CRITICAL
	ALL      = 255
	NOTHING  = 0
)

var severityOrder = []int{DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL}

var levelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARNING,
	"WARN":     WARNING,
	"ERROR":    ERROR,
	"NOTICE":   NOTICE,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

// the CLI switches to ALL in verbose mode
var level = NORMAL

var handler = newBufferedHandler()

// SetLevel sets the bit mask of active levels, eg. SetLevel(INFO | ERROR)
func SetLevel(l int) {
	level = l
}

// Level returns the bit mask of active levels
func Level() int {
	return level
}

// SetMinimalLevel activates l and every level more severe than it
func SetMinimalLevel(l int) {
	mask := 0
	for _, lvl := range severityOrder {
		if lvl >= l {
			mask |= lvl
		}
	}
	SetLevel(mask)
}

// SetMinimalLevelByName is SetMinimalLevel for level names as they appear in config files and flags, case insensitive
func SetMinimalLevelByName(name string) error {
	l, ok := levelsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("Invalid level %s", name)
	}
	SetMinimalLevel(l)
	return nil
}

// MessageContext describes where and when a message was logged
type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

func Debug(msg string, args ...interface{}) {
	logAt(DEBUG, "DEBUG", msg, args...)
}

func Info(msg string, args ...interface{}) {
	logAt(INFO, "INFO", msg, args...)
}

func Warning(msg string, args ...interface{}) {
	logAt(WARNING, "WARNING", msg, args...)
}

// Error logs at ERROR level, followed by the stack of the caller
func Error(msg string, args ...interface{}) {
	logAt(ERROR, "ERROR", msg+"\n\nStacktrace: "+stacktrace.Get().String()+"\n", args...)
}

func logAt(l int, levelName, msg string, args ...interface{}) {
	if level&l == 0 {
		return
	}
	// emit -> logAt -> Debug, Info, etc. -> caller
	emit(3, levelName, msg, args...)
}

func emit(depth int, levelName, msg string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(depth)
	ctx := &MessageContext{
		Level:     levelName,
		File:      path.Base(file),
		Line:      line,
		TimeStamp: time.Now(),
	}

	// func() interface{} arguments are evaluated lazily, only once the message is known to be logged
	for i, arg := range args {
		if fn, ok := arg.(func() interface{}); ok {
			args[i] = fn()
		}
	}

	if err := handler.Emit(ctx, msg, args...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing log message: %v\n%s\n", err, DefaultFormatter.Format(ctx, msg, args...))
	}
}

// Close flushes and closes the log file, if any
func Close() {
	handler.Close()
}

// stdLogWriter sends lines written through the standard library's log package to our handler
type stdLogWriter struct {
	level     int
	levelName string
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	if level&w.level != 0 {
		// emit -> Write -> Logger.output -> log.Print* -> caller
		emit(4, w.levelName, "%s", string(bytes.TrimRight(p, "\r\n")))
	}
	return len(p), nil
}

// BridgeStdLog routes output of the standard library's log package through this package at the given level
func BridgeStdLog(l int) {
	for name, lvl := range levelsByName {
		if lvl == l {
			log.SetFlags(0)
			log.SetOutput(stdLogWriter{level: l, levelName: name})
			return
		}
	}
}
