package cmdtree

import (
	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/runners/facts"
)

func newFactsCommand(ct *CmdTree) *captain.Command {
	return captain.NewCommand(
		"facts",
		"Reports everything known about the host: OS family, kernel, distribution, CPU, memory, user and runtime.",
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return facts.New(ct.prime).Run()
		},
	)
}
