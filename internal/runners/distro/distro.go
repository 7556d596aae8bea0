package distro

import (
	"fmt"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

// ExitCodeUnsatisfied is returned when the distribution does not satisfy the required constraint
const ExitCodeUnsatisfied = 1

type primeable interface {
	primer.Outputer
	primer.Querier
}

type RunParams struct {
	// Require is a version constraint the distribution release must satisfy, eg. ">= 20.04"
	Require string
}

type Distro struct {
	out output.Outputer
	q   sysinfo.Querier
}

func New(prime primeable) *Distro {
	return &Distro{
		out: prime.Output(),
		q:   prime.Querier(),
	}
}

// Run prints the Linux distribution of the host. Off Linux, or when the distribution cannot be identified, the
// result is empty rather than an error.
func (d *Distro) Run(params *RunParams) error {
	info := d.q.LinuxDistribution()
	logging.Debug("Distribution: %v", info)

	if params.Require == "" {
		d.out.Print(info)
		return nil
	}

	ok, err := info.Satisfies(params.Require)
	if err != nil {
		return errs.WrapExitCode(
			errs.WrapUserFacing(err, fmt.Sprintf("Could not check the distribution against '%s': %s", params.Require, err.Error())),
			ExitCodeUnsatisfied,
		)
	}
	if !ok {
		return errs.WrapExitCode(errs.NewUserFacing(
			fmt.Sprintf("%s %s does not satisfy '%s'", info.Name(), info.Release(), params.Require),
		), ExitCodeUnsatisfied)
	}

	d.out.Print(info)
	return nil
}
