package osinfo

import (
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

type primeable interface {
	primer.Outputer
	primer.Querier
}

type OS struct {
	out output.Outputer
	q   sysinfo.Querier
}

func New(prime primeable) *OS {
	return &OS{
		out: prime.Output(),
		q:   prime.Querier(),
	}
}

type osOutput struct {
	Family    sysinfo.OSFamily   `json:"family" yaml:"family"`
	Ancestors []sysinfo.OSFamily `json:"ancestors" yaml:"ancestors"`
	System    string             `json:"system,omitempty" yaml:"system,omitempty"`
	Release   string             `json:"release,omitempty" yaml:"release,omitempty"`
	Version   string             `json:"version,omitempty" yaml:"version,omitempty"`
	Machine   string             `json:"machine,omitempty" yaml:"machine,omitempty"`
}

// Run prints the OS family of the host, and the raw platform strings when they are available
func (o *OS) Run() error {
	family := o.q.OS()
	result := &osOutput{
		Family:    family,
		Ancestors: family.Ancestors(),
	}

	u, err := o.q.Uname()
	if err != nil {
		if family == sysinfo.Unknown {
			return errs.WrapUserFacing(err, "Could not determine the operating system")
		}
		o.out.Print(result)
		return nil
	}

	result.System = u.Sysname
	result.Release = u.Release
	result.Version = u.Version
	result.Machine = u.Machine

	o.out.Print(result)
	return nil
}
