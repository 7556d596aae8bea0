package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marshalled struct{}

func (marshalled) MarshalOutput(f Format) interface{} {
	if f == PlainFormatName {
		return "human"
	}
	return map[string]string{"format": string(f)}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "plain", "json", "yaml"} {
		out, err := New(format, &Config{})
		require.NoError(t, err, format)
		if format == "" {
			format = "plain"
		}
		assert.Equal(t, Format(format), out.Type())
	}

	_, err := New("xml", &Config{})
	var notRecognized *ErrNotRecognized
	require.True(t, errors.As(err, &notRecognized))
	assert.Equal(t, "xml", notRecognized.Format)
}

func TestMediator(t *testing.T) {
	outWriter := &bytes.Buffer{}
	out, err := New("plain", &Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)
	out.Print(marshalled{})
	assert.Equal(t, "human\n", outWriter.String())

	outWriter.Reset()
	out, err = New("json", &Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)
	out.Print(marshalled{})
	assert.Equal(t, "{\"format\":\"json\"}\n", outWriter.String())
}
