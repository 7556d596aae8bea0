package output

import (
	"io"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

type Format string

// Format constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
	YAMLFormatName  Format = "yaml"
)

// Formats lists every supported format, in the order they are advertised
var Formats = []Format{PlainFormatName, JSONFormatName, YAMLFormatName}

// ErrNotRecognized is returned when the requested format is not one of Formats
type ErrNotRecognized struct {
	Format string
}

func (e *ErrNotRecognized) Error() string {
	return "unknown output format: " + e.Format
}

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Type() Format
	Config() *Config
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	switch Format(formatName) {
	case "", PlainFormatName:
		return &Mediator{NewPlain(config), PlainFormatName}, nil
	case JSONFormatName:
		return &Mediator{NewJSON(config), JSONFormatName}, nil
	case YAMLFormatName:
		return &Mediator{NewYAML(config), YAMLFormatName}, nil
	}

	return nil, errs.Wrap(&ErrNotRecognized{formatName}, "Could not create outputer")
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter io.Writer
	ErrWriter io.Writer
	Colored   bool
}
