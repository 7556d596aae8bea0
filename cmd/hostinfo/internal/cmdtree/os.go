package cmdtree

import (
	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/runners/osinfo"
)

func newOSCommand(ct *CmdTree) *captain.Command {
	return captain.NewCommand(
		"os",
		"Reports the OS family of the host, the families it derives from and the raw kernel strings.",
		[]*captain.Flag{},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return osinfo.New(ct.prime).Run()
		},
	)
}
