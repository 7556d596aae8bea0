package osutils

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// Env is the environment variable accessor used by hostinfo. It exists so callers (and tests) can substitute the
// process environment with something else.
type Env interface {
	Getenv(name string) string
	LookupEnv(name string) (string, bool)
	Setenv(name, value string) error
	Unsetenv(name string) error
}

// ProcessEnv is the Env backed by the environment of the running process
type ProcessEnv struct{}

func (ProcessEnv) Getenv(name string) string { return os.Getenv(name) }

func (ProcessEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (ProcessEnv) Setenv(name, value string) error { return os.Setenv(name, value) }

func (ProcessEnv) Unsetenv(name string) error { return os.Unsetenv(name) }

// MapEnv is an Env backed by a map, it does not touch the process environment
type MapEnv map[string]string

func (m MapEnv) Getenv(name string) string {
	return m[name]
}

func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapEnv) Setenv(name, value string) error {
	m[name] = value
	return nil
}

func (m MapEnv) Unsetenv(name string) error {
	delete(m, name)
	return nil
}

// HasEnv returns whether the given variable is set, even if it is set to an empty value
func HasEnv(env Env, name string) bool {
	_, ok := env.LookupEnv(name)
	return ok
}

// BoolEnv interprets the given variable as a boolean, unset or unparseable values are false
func BoolEnv(env Env, name string) bool {
	v, ok := env.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return b
}

var varRx = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// ExpandVars replaces $VAR and ${VAR} references in value with their values from env. References to variables that
// are not set are left untouched.
func ExpandVars(env Env, value string) string {
	return varRx.ReplaceAllStringFunc(value, func(ref string) string {
		match := varRx.FindStringSubmatch(ref)
		name := match[1]
		if name == "" {
			name = match[2]
		}
		if v, ok := env.LookupEnv(name); ok {
			return v
		}
		return ref
	})
}
