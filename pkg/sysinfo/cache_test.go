package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	h, accessor := newTestHost(t, linuxUname(), map[string]string{"/etc/os-release": osRelease})
	c := NewCache(h)
	assert.Same(t, h, c.Host())

	for i := 0; i < 3; i++ {
		assert.Equal(t, Linux, c.OS())
		u, err := c.Uname()
		require.NoError(t, err)
		assert.Equal(t, "Linux", u.Sysname)
	}
	assert.Equal(t, 2, accessor.calls, "OS and Uname are each looked up once")

	c.Flush()
	c.OS()
	assert.Equal(t, 3, accessor.calls)
}

func TestCacheIsolatesCallers(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{"/etc/os-release": osRelease})
	c := NewCache(h)

	info := c.LinuxDistribution()
	info[DistName] = "tampered"
	assert.Equal(t, "ubuntu", c.LinuxDistribution().Name())

	cached := c.LinuxDistribution()
	cached[DistRelease] = "0"
	assert.Equal(t, "20.04", c.LinuxDistribution().Release())

	u, err := c.Uname()
	require.NoError(t, err)
	u.Sysname = "tampered"
	u, err = c.Uname()
	require.NoError(t, err)
	assert.Equal(t, "Linux", u.Sysname)
}

func TestCacheSkipsFailures(t *testing.T) {
	h, accessor := newTestHost(t, nil, nil)
	c := NewCache(h)

	_, err := c.Uname()
	assert.Error(t, err)
	_, err = c.Uname()
	assert.Error(t, err)
	assert.Equal(t, 2, accessor.calls)

	_, err = c.MacOSVersion()
	assert.ErrorIs(t, err, ErrNotDarwin)
}

func TestCacheCollect(t *testing.T) {
	h, accessor := newTestHost(t, linuxUname(), map[string]string{"/etc/os-release": osRelease})
	c := NewCache(h)

	first := c.Collect()
	calls := accessor.calls
	second := c.Collect()

	assert.Equal(t, first.Distribution, second.Distribution)
	assert.Equal(t, "ubuntu", second.Distribution.Name())
	assert.Less(t, accessor.calls-calls, calls, "the second collection answers OS and uname from the cache")
}
