package sysinfo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/fileutils"
)

// ReleaseFileVars holds the variables of a KEY=value release file, keyed by lowercased name
type ReleaseFileVars map[string]string

// ParseError is returned when a release file exists but does not follow the grammar we expect of it
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse %s: %s", e.Path, e.Reason)
}

var releaseVarRx = regexp.MustCompile(`(?m)^[ \t]*(\w+)[ \t]*=[ \t]*(.*?)[ \t\r]*$`)

// ParseReleaseFile reads a KEY=value style release file (eg. /etc/os-release). Values may be wrapped in single or
// double quotes, which are stripped. Lines that don't follow the grammar are skipped, but a file without any
// variables at all is a ParseError. It is up to the caller to check that the file exists.
func ParseReleaseFile(files FileProbe, path string) (ReleaseFileVars, error) {
	content, err := files.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read release file")
	}
	return parseReleaseVars(path, content)
}

func parseReleaseVars(path string, content []byte) (ReleaseFileVars, error) {
	if fileutils.IsBinary(content) {
		return nil, &ParseError{path, "file is binary"}
	}

	matches := releaseVarRx.FindAllStringSubmatch(string(content), -1)
	if len(matches) == 0 {
		return nil, &ParseError{path, "no KEY=value lines found"}
	}

	vars := ReleaseFileVars{}
	for _, match := range matches {
		vars[strings.ToLower(match[1])] = unquote(match[2])
	}
	return vars, nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
