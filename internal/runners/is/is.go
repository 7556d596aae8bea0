package is

import (
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

// ExitCodeMismatch is returned when the host is none of the given families
const ExitCodeMismatch = 1

type primeable interface {
	primer.Outputer
	primer.Querier
}

type RunParams struct {
	Families []sysinfo.OSFamily
}

type Is struct {
	out output.Outputer
	q   sysinfo.Querier
}

func New(prime primeable) *Is {
	return &Is{
		out: prime.Output(),
		q:   prime.Querier(),
	}
}

// Run succeeds when the host is-a any of the given families. A mismatch is reported only through the exit code.
func (i *Is) Run(params *RunParams) error {
	current := i.q.OS()
	matches := sysinfo.IsOS(current, params.Families...)
	logging.Debug("%s is any of %v: %v", current, params.Families, matches)

	i.out.Print(matches)
	if !matches {
		return errs.Silence(errs.WrapExitCode(errs.New("%s is none of %v", current, params.Families), ExitCodeMismatch))
	}
	return nil
}
