package output

import (
	"encoding/json"
	"io"

	"github.com/ActiveState/hostinfo/internal/logging"
)

// JSON is our JSON outputer, there's not much to it as encoding/json does the heavy lifting
type JSON struct {
	cfg *Config
}

// NewJSON constructs a new JSON struct
func NewJSON(config *Config) *JSON {
	return &JSON{config}
}

// Print will marshal and print the given value to the output writer
func (f *JSON) Print(value interface{}) {
	f.Fprint(f.cfg.OutWriter, value)
}

// Fprint allows printing to a specific writer, using all the conveniences of the output package
func (f *JSON) Fprint(writer io.Writer, value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}

	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error("Could not marshal value")
		return
	}

	writer.Write(b)
	writer.Write([]byte("\n"))
}

// Error will marshal and print the given value to the error writer, wrapped in an object with an "error" key
func (f *JSON) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}

	errStruct := struct {
		Error interface{} `json:"error"`
	}{value}
	b, err := json.Marshal(errStruct)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte(`{"error":"Could not marshal value"}`)
	}
	f.cfg.ErrWriter.Write(b)
	f.cfg.ErrWriter.Write([]byte("\n"))
}

// Notice is ignored by JSON, as they are not considered as output
func (f *JSON) Notice(value interface{}) {}

// Type tells callers what type of outputer we are
func (f *JSON) Type() Format {
	return JSONFormatName
}

// Config returns the Config struct for the active instance
func (f *JSON) Config() *Config {
	return f.cfg
}
