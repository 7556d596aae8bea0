package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

func TestMarshalOutput(t *testing.T) {
	facts := &sysinfo.Facts{
		OS:     sysinfo.Linux,
		Memory: &sysinfo.MemoryInfo{Total: 8 * 1024 * 1024 * 1024, Available: 1024, Used: 0, SwapTotal: 2048, SwapFree: 1024},
		Uptime: 90,
	}
	o := &factsOutput{facts}

	assert.Same(t, facts, o.MarshalOutput(output.JSONFormatName))
	assert.Same(t, facts, o.MarshalOutput(output.YAMLFormatName))

	plain, ok := o.MarshalOutput(output.PlainFormatName).(*plainFacts)
	require.True(t, ok)
	assert.Equal(t, sysinfo.Linux, plain.OS)
	assert.Equal(t, "8GiB", plain.Memory.Total)
	assert.Equal(t, "1KiB", plain.Memory.Available)
	assert.Equal(t, "1KiB free of 2KiB", plain.Memory.Swap)
	assert.Equal(t, "About a minute", plain.Uptime)
	assert.Nil(t, plain.Process)
}
