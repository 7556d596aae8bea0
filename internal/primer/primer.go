package primer

import (
	"github.com/ActiveState/hostinfo/internal/config"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

// Values carries the dependencies shared by every runner
type Values struct {
	output output.Outputer
	config *config.Instance
	host   *sysinfo.Host
	cache  *sysinfo.Cache
}

// New bundles the given values. When cache is nil runners query the host directly.
func New(output output.Outputer, config *config.Instance, host *sysinfo.Host, cache *sysinfo.Cache) *Values {
	return &Values{
		output: output,
		config: config,
		host:   host,
		cache:  cache,
	}
}

type Outputer interface {
	Output() output.Outputer
}

type Configurer interface {
	Config() *config.Instance
}

type Hoster interface {
	Host() *sysinfo.Host
}

type Querier interface {
	Querier() sysinfo.Querier
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Config() *config.Instance {
	return v.config
}

func (v *Values) Host() *sysinfo.Host {
	return v.host
}

// Querier returns the cache when one is in use, and the host otherwise
func (v *Values) Querier() sysinfo.Querier {
	if v.cache != nil {
		return v.cache
	}
	return v.host
}
