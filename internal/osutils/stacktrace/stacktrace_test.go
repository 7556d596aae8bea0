package stacktrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	st := Get()
	require.NotEmpty(t, st.Frames)

	first := st.Frames[0]
	assert.Equal(t, "TestGet", first.Func)
	assert.Equal(t, "stacktrace_test.go", first.Source)
	assert.True(t, strings.HasSuffix(first.Package, "internal/osutils/stacktrace"), first.Package)

	for _, frame := range st.Frames {
		assert.NotEqual(t, "stacktrace.go", frame.Source, "stacktrace package frames should be skipped")
	}
}

func TestGetWithSkip(t *testing.T) {
	st := GetWithSkip([]string{currentTestFile()})
	for _, frame := range st.Frames {
		assert.NotEqual(t, "stacktrace_test.go", frame.Source)
	}
}

func TestSplitFunc(t *testing.T) {
	pkg, fn := splitFunc("github.com/ActiveState/hostinfo/pkg/sysinfo.(*Host).OS")
	assert.Equal(t, "github.com/ActiveState/hostinfo/pkg/sysinfo", pkg)
	assert.Equal(t, "(*Host).OS", fn)

	pkg, fn = splitFunc("main.main")
	assert.Equal(t, "main", pkg)
	assert.Equal(t, "main", fn)
}

func currentTestFile() string {
	return Get().Frames[0].Path
}
