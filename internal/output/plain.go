package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/ActiveState/hostinfo/internal/logging"
)

// Plain is our plain outputer, it uses reflect to marshal the data.
// Struct fields are printed as "key: value" lines, keys taken from the json tag when there is one.
type Plain struct {
	cfg *Config
}

// NewPlain constructs a new Plain struct
func NewPlain(config *Config) *Plain {
	return &Plain{config}
}

// Print will marshal and print the given value to the output writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
	f.write(f.cfg.OutWriter, "\n")
}

// Error will marshal and print the given value to the error writer, it wraps it in the error format but otherwise the
// only thing that identifies it as an error is the channel it writes it to
func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("[ERROR]%s[/RESET]\n", value))
}

// Notice will marshal and print the given value to the error writer, it wraps it in the notice format but otherwise
// the only thing that identifies it as an error is the channel it writes it to
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("%s\n", value))
}

// Type tells callers what type of outputer we are
func (f *Plain) Type() Format {
	return PlainFormatName
}

// Config returns the Config struct for the active instance
func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	v, err := sprint(value)
	if err != nil {
		logging.Error("Could not sprint value: %v, error: %v", value, err)
		writeColorized(fmt.Sprintf("[ERROR]Could not print value: %s[/RESET]\n", err.Error()), f.cfg.ErrWriter, !f.cfg.Colored)
		return
	}
	writeColorized(v, writer, !f.cfg.Colored)
}

const indent = "  "

func sprint(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}

	switch t := value.(type) {
	case error:
		return t.Error(), nil
	case fmt.Stringer:
		return t.String(), nil
	}

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr, reflect.Interface:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct:
		return sprintStruct(value)
	case reflect.Map:
		return sprintMap(value)
	case reflect.Slice, reflect.Array:
		return sprintSlice(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", valueRfl.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", valueRfl.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", valueRfl.Float()), nil
	case reflect.Bool:
		return fmt.Sprintf("%t", valueRfl.Bool()), nil
	case reflect.String:
		return valueRfl.String(), nil
	}

	return "", fmt.Errorf("unknown type: %s", valueRfl.Type().String())
}

func sprintStruct(value interface{}) (string, error) {
	meta, err := parseStructMeta(value)
	if err != nil {
		return "", err
	}

	result := []string{}
	for i, v := range meta.values {
		line, err := sprintField(meta.serializedFields[i], v)
		if err != nil {
			return "", err
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n"), nil
}

func sprintMap(value interface{}) (string, error) {
	mapRfl := reflect.ValueOf(value)

	keys := []string{}
	values := map[string]interface{}{}
	iter := mapRfl.MapRange()
	for iter.Next() {
		key := fmt.Sprintf("%v", iter.Key().Interface())
		keys = append(keys, key)
		values[key] = iter.Value().Interface()
	}
	sort.Strings(keys)

	result := []string{}
	for _, key := range keys {
		line, err := sprintField(key, values[key])
		if err != nil {
			return "", err
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n"), nil
}

func sprintSlice(value interface{}) (string, error) {
	slice, err := parseSlice(value)
	if err != nil {
		return "", err
	}

	result := []string{}
	for _, v := range slice {
		stringValue, err := sprint(v)
		if err != nil {
			return "", err
		}
		result = append(result, stringValue)
	}

	if len(result) == 0 {
		return "", nil
	}
	return "\n - " + strings.Join(result, "\n - "), nil
}

// sprintField renders "key: value", nesting structs and maps below the key
func sprintField(key string, value interface{}) (string, error) {
	stringValue, err := sprint(value)
	if err != nil {
		return "", err
	}
	if stringValue == "" || !isNested(value) {
		return fmt.Sprintf("[BOLD]%s:[/RESET] %s", key, stringValue), nil
	}
	nested := indent + strings.ReplaceAll(stringValue, "\n", "\n"+indent)
	return fmt.Sprintf("[BOLD]%s:[/RESET]\n%s", key, nested), nil
}

func isNested(value interface{}) bool {
	switch value.(type) {
	case error, fmt.Stringer:
		return false
	}
	valueRfl := reflect.ValueOf(value)
	for valueRfl.Kind() == reflect.Ptr || valueRfl.Kind() == reflect.Interface {
		if valueRfl.IsNil() {
			return false
		}
		valueRfl = valueRfl.Elem()
	}
	return valueRfl.Kind() == reflect.Struct || valueRfl.Kind() == reflect.Map
}
