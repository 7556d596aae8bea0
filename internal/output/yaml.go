package output

import (
	"gopkg.in/yaml.v3"

	"github.com/ActiveState/hostinfo/internal/logging"
)

// YAML is our YAML outputer, it behaves like JSON but is easier on the eyes
type YAML struct {
	cfg *Config
}

// NewYAML constructs a new YAML struct
func NewYAML(config *Config) *YAML {
	return &YAML{config}
}

// Print will marshal and print the given value to the output writer
func (f *YAML) Print(value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}

	b, err := yaml.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error("Could not marshal value")
		return
	}
	f.cfg.OutWriter.Write(b)
}

// Error will marshal and print the given value to the error writer, under an "error" key
func (f *YAML) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}

	b, err := yaml.Marshal(map[string]interface{}{"error": value})
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte("error: Could not marshal value\n")
	}
	f.cfg.ErrWriter.Write(b)
}

// Notice is ignored by YAML, as they are not considered as output
func (f *YAML) Notice(value interface{}) {}

// Type tells callers what type of outputer we are
func (f *YAML) Type() Format {
	return YAMLFormatName
}

// Config returns the Config struct for the active instance
func (f *YAML) Config() *Config {
	return f.cfg
}
