package cmdtree

import (
	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/runners/expand"
)

func newExpandCommand(ct *CmdTree) *captain.Command {
	params := expand.RunParams{}

	return captain.NewCommand(
		"expand",
		"Replaces $VAR and ${VAR} references in the given text with their values. Unset variables are left as is.",
		[]*captain.Flag{},
		[]*captain.Argument{
			{
				Name:        "text",
				Description: "Text to expand",
				Required:    true,
				Variadic:    true,
				Value:       &params.Text,
			},
		},
		func(_ *captain.Command, _ []string) error {
			return expand.New(ct.prime).Run(&params)
		},
	)
}
