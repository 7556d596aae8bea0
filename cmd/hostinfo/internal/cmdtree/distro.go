package cmdtree

import (
	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/runners/distro"
)

func newDistroCommand(ct *CmdTree) *captain.Command {
	params := distro.RunParams{}
	require := &captain.ConstraintFlag{}

	cmd := captain.NewCommand(
		"distro",
		"Reports the Linux distribution of the host. The result is empty on other systems.",
		[]*captain.Flag{
			{
				Name:        "require",
				Description: "Fail unless the distribution release satisfies this version constraint, eg. '>= 20.04'",
				Value:       require,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			params.Require = require.String()
			return distro.New(ct.prime).Run(&params)
		},
	)
	cmd.SetAliases("distribution")
	return cmd
}
