package output

import (
	"fmt"
	"reflect"
	"strings"
)

type structMeta struct {
	fields           []string
	serializedFields []string
	values           []interface{}
}

func parseStructMeta(v interface{}) (structMeta, error) {
	structRfl := reflect.ValueOf(v)

	// Fail if the passed type is not a struct
	if structRfl.Kind() != reflect.Struct {
		return structMeta{}, fmt.Errorf("Expected struct, got: %s", structRfl.Kind().String())
	}

	info := structMeta{}
	for i := 0; i < structRfl.Type().NumField(); i++ {
		fieldRfl := structRfl.Type().Field(i)
		valueRfl := structRfl.Field(i)

		if !fieldRfl.IsExported() {
			continue
		}

		serialized := strings.ToLower(fieldRfl.Name[0:1]) + fieldRfl.Name[1:]
		if tag, ok := fieldRfl.Tag.Lookup("json"); ok {
			name, opts, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if strings.Contains(opts, "omitempty") && valueRfl.IsZero() {
				continue
			}
			if name != "" {
				serialized = name
			}
		}

		info.fields = append(info.fields, fieldRfl.Name)
		info.values = append(info.values, valueRfl.Interface())
		info.serializedFields = append(info.serializedFields, serialized)
	}

	return info, nil
}

func parseSlice(v interface{}) ([]interface{}, error) {
	sliceRfl := reflect.ValueOf(v)

	// Fail if the passed type is not a slice
	if sliceRfl.Kind() != reflect.Slice && sliceRfl.Kind() != reflect.Array {
		return []interface{}{}, fmt.Errorf("Expected slice, got: %s", sliceRfl.Kind().String())
	}

	result := make([]interface{}, sliceRfl.Len())
	for i := range result {
		result[i] = sliceRfl.Index(i).Interface()
	}
	return result, nil
}
