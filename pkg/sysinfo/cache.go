package sysinfo

import (
	"github.com/patrickmn/go-cache"
)

// Cache keys used for storing/retrieving computed system information.
const (
	osCacheKey           = "os"
	unameCacheKey        = "uname"
	distributionCacheKey = "distribution"
	macOSCacheKey        = "macos"
)

// Cache memoizes the answers of a Host for the lifetime of the process. The OS doesn't change while we run, so
// nothing ever expires. Only successful lookups are cached.
type Cache struct {
	host  *Host
	cache *cache.Cache
}

// NewCache wraps h in a Cache
func NewCache(h *Host) *Cache {
	return &Cache{
		host:  h,
		cache: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Host returns the uncached Host
func (c *Cache) Host() *Host {
	return c.host
}

func (c *Cache) OS() OSFamily {
	if v, ok := c.cache.Get(osCacheKey); ok {
		return v.(OSFamily)
	}
	family := c.host.OS()
	c.cache.Set(osCacheKey, family, cache.NoExpiration)
	return family
}

// Uname returns a copy of the cached uname information
func (c *Cache) Uname() (*Uname, error) {
	if v, ok := c.cache.Get(unameCacheKey); ok {
		u := *v.(*Uname)
		return &u, nil
	}
	u, err := c.host.Uname()
	if err != nil {
		return nil, err
	}
	stored := *u
	c.cache.Set(unameCacheKey, &stored, cache.NoExpiration)
	return u, nil
}

// LinuxDistribution returns a copy of the cached distribution, so callers cannot alter what others will see
func (c *Cache) LinuxDistribution() DistributionInfo {
	if v, ok := c.cache.Get(distributionCacheKey); ok {
		return copyDistribution(v.(DistributionInfo))
	}
	info := c.host.LinuxDistribution()
	c.cache.Set(distributionCacheKey, copyDistribution(info), cache.NoExpiration)
	return info
}

func (c *Cache) MacOSVersion() (*MacOSVersion, error) {
	if v, ok := c.cache.Get(macOSCacheKey); ok {
		mv := *v.(*MacOSVersion)
		return &mv, nil
	}
	mv, err := c.host.MacOSVersion()
	if err != nil {
		return nil, err
	}
	stored := *mv
	c.cache.Set(macOSCacheKey, &stored, cache.NoExpiration)
	return mv, nil
}

// Collect gathers every fact, answering from the cache where it can
func (c *Cache) Collect() *Facts {
	return collect(c, c.host)
}

// Flush forgets everything cached so far
func (c *Cache) Flush() {
	c.cache.Flush()
}

func copyDistribution(info DistributionInfo) DistributionInfo {
	result := make(DistributionInfo, len(info))
	for k, v := range info {
		result[k] = v
	}
	return result
}
