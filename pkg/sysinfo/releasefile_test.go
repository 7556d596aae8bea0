package sysinfo

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, contents string) (ReleaseFileVars, error) {
	root := writeTree(t, map[string]string{"/etc/os-release": contents})
	return ParseReleaseFile(RootedProbe{root}, "/etc/os-release")
}

func TestParseReleaseFileQuoting(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{"double quoted", `NAME="hello world"`, "hello world"},
		{"single quoted", `NAME='hello world'`, "hello world"},
		{"unquoted", `NAME=hello world`, "hello world"},
		{"spaced", `NAME = hello world `, "hello world"},
		{"crlf", "NAME=\"hello world\"\r\n", "hello world"},
		{"mismatched quotes", `NAME="hello world'`, `"hello world'`},
		{"empty", `NAME=`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars, err := parseFixture(t, tt.contents)
			require.NoError(t, err)
			assert.Equal(t, ReleaseFileVars{"name": tt.want}, vars)
		})
	}
}

func TestParseReleaseFile(t *testing.T) {
	vars, err := parseFixture(t, `# Generated by the installer
NAME="Ubuntu"
VERSION_ID="20.04"

Some free text that is not a variable
ID=ubuntu
id=debian
`)
	require.NoError(t, err)
	assert.Equal(t, ReleaseFileVars{
		"name":       "Ubuntu",
		"version_id": "20.04",
		"id":         "debian",
	}, vars, "keys are case folded and the last duplicate wins")
}

func TestParseReleaseFileErrors(t *testing.T) {
	t.Run("no variables", func(t *testing.T) {
		_, err := parseFixture(t, "Fedora release 33 (Thirty Three)\n")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
		assert.Equal(t, "/etc/os-release", parseErr.Path)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseFixture(t, "")
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("binary", func(t *testing.T) {
		_, err := parseFixture(t, "ID=ubuntu\x00\x01")
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseReleaseFile(RootedProbe{t.TempDir()}, "/etc/os-release")
		require.Error(t, err)
		var parseErr *ParseError
		assert.False(t, errors.As(err, &parseErr), "a missing file is not a parse error")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
