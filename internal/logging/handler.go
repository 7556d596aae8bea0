package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// tailSize is the number of bytes of recent log output kept in memory
const tailSize = 16 * 1024

// bufferedHandler keeps the tail of the log in memory, and optionally echoes to stderr and a log file
type bufferedHandler struct {
	mu        sync.Mutex
	formatter Formatter
	tail      *ringBuffer
	file      *os.File
	stderr    io.Writer
	verbose   bool
}

func newBufferedHandler() *bufferedHandler {
	return &bufferedHandler{
		formatter: DefaultFormatter,
		tail:      newRingBuffer(tailSize),
		stderr:    os.Stderr,
	}
}

func (l *bufferedHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	message = l.formatter.Format(ctx, message, args...) + "\n"
	if l.verbose {
		io.WriteString(l.stderr, message)
	}
	l.tail.Write([]byte(message))

	if l.file != nil {
		if _, err := l.file.WriteString(message); err != nil {
			return fmt.Errorf("Could not write to log file %s: %w", l.file.Name(), err)
		}
	}
	return nil
}

func (l *bufferedHandler) setFile(f *os.File) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
	}
	l.file = f
}

func (l *bufferedHandler) Close() {
	l.setFile(nil)
}

// SetLogFile also writes the log to the given file, truncating it. An empty path disables file logging.
func SetLogFile(filename string) error {
	if filename == "" {
		handler.setFile(nil)
		return nil
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Could not open log file for writing: %s: %w", filename, err)
	}
	handler.setFile(f)
	return nil
}

// SetVerbose toggles echoing of log messages to stderr
func SetVerbose(v bool) {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	handler.verbose = v
}

// Tail returns the most recent log output
func Tail() string {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	return handler.tail.Read()
}
