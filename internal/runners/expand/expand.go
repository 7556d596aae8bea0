package expand

import (
	"strings"

	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

type primeable interface {
	primer.Outputer
	primer.Hoster
}

type RunParams struct {
	Text []string
}

type Expand struct {
	out  output.Outputer
	host *sysinfo.Host
}

func New(prime primeable) *Expand {
	return &Expand{
		out:  prime.Output(),
		host: prime.Host(),
	}
}

// Run prints the text with environment variable references replaced by their values
func (e *Expand) Run(params *RunParams) error {
	e.out.Print(e.host.ExpandVars(strings.Join(params.Text, " ")))
	return nil
}
