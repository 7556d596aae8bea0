package stacktrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Stacktrace represents a stacktrace
type Stacktrace struct {
	Frames []Frame
}

// Frame is a single frame in a stacktrace
type Frame struct {
	Func    string
	Source  string
	Line    int
	Path    string
	Package string
}

// FrameCap is a default cap for frames array.
// It can be changed to number of expected frames
// for purpose of performance optimisation.
var FrameCap = 20

// String returns a string representation of a stacktrace
// For example:
// ./main.go:main:18
// ./main.go:main:9
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf(`%s:%s:%d`, frame.Path, frame.Func, frame.Line))
	}
	return strings.Join(result, "\n")
}

// Get returns a stacktrace, skipping the frame that called it
func Get() *Stacktrace {
	return GetWithSkip([]string{})
}

// GetWithSkip returns a stacktrace, omitting any frame that originates from one of the given files
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, FrameCap)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return stacktrace
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	skipFiles = append(skipFiles, currentFile())

	for {
		frame, more := frames.Next()
		if !skipFile(frame.File, skipFiles) {
			pkg, fn := splitFunc(frame.Function)
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func:    fn,
				Source:  filepath.Base(frame.File),
				Line:    frame.Line,
				Path:    frame.File,
				Package: pkg,
			})
		}
		if !more {
			break
		}
	}

	return stacktrace
}

func skipFile(file string, skipFiles []string) bool {
	for _, skip := range skipFiles {
		if file == skip {
			return true
		}
	}
	return false
}

// splitFunc splits a fully qualified function name (eg. github.com/foo/bar.Baz) into its package and function
func splitFunc(name string) (string, string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}

func currentFile() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}
