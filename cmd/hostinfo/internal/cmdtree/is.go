package cmdtree

import (
	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/runners/is"
)

func newIsCommand(ct *CmdTree) *captain.Command {
	families := captain.OSFamiliesArg{}

	return captain.NewCommand(
		"is",
		"Succeeds when the host is any of the given OS families, and exits with code 1 otherwise. Example: hostinfo is unix",
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        "family",
				Description: "OS family: unix, windows, linux, darwin, freebsd, hp-ux, aix or solaris",
				Required:    true,
				Variadic:    true,
				Value:       &families,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return is.New(ct.prime).Run(&is.RunParams{Families: families})
		},
	)
}
