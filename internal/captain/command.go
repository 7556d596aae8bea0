package captain

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

// ExitCodeUsage is returned for errors in how the command was invoked
const ExitCodeUsage = 2

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra  *cobra.Command
	parent *Command

	flags     []*Flag
	arguments []*Argument

	execute Executor
	onStart Executor
}

func NewCommand(name, description string, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			panic(fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			))
		}
		if arg.Variadic && idx != len(args)-1 {
			panic(fmt.Sprintf("Only the last argument can be variadic: %s", arg.Name))
		}
	}

	cmd := &Command{
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:               usage(name, args),
		Short:             short,
		Long:              description,
		PersistentPreRunE: cmd.persistRunner,
		RunE:              cmd.runner,
		Args:              cmd.argValidator,

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.cobra.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return rationalizeFlagError(err)
	})

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func usage(name string, args []*Argument) string {
	use := []string{name}
	for _, arg := range args {
		argUse := arg.Name
		if arg.Variadic {
			argUse += "..."
		}
		if arg.Required {
			argUse = "<" + argUse + ">"
		} else {
			argUse = "[" + argUse + "]"
		}
		use = append(use, argUse)
	}
	return strings.Join(use, " ")
}

func (c *Command) Name() string {
	return c.cobra.Name()
}

// Execute parses args and runs whichever command in the tree they select
func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return rationalizeError(err)
}

// SetOutput redirects usage and help text
func (c *Command) SetOutput(out, errOut io.Writer) {
	c.cobra.SetOut(out)
	c.cobra.SetErr(errOut)
}

// OnExecStart registers fn to run after flags are parsed but before any command in the tree executes
func (c *Command) OnExecStart(fn Executor) {
	c.onStart = fn
}

func (c *Command) SetAliases(aliases ...string) {
	c.cobra.Aliases = aliases
}

// SetVersion enables the --version flag, which prints v and exits without running the command
func (c *Command) SetVersion(v string) {
	c.cobra.Version = v
}

// PersistentFlags returns the flags that apply to this command and all of its children
func (c *Command) PersistentFlags() *pflag.FlagSet {
	return c.cobra.PersistentFlags()
}

func (c *Command) AddChildren(children ...*Command) {
	for _, child := range children {
		child.parent = c
		c.cobra.AddCommand(child.cobra)
	}
}

func (c *Command) flagByName(name string, persistOnly bool) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name && (!persistOnly || flag.Persist) {
			return flag
		}
	}
	return nil
}

func (c *Command) persistRunner(cobraCmd *cobra.Command, args []string) error {
	root := c.root()
	// Run OnUse functions for persistent flags
	root.runFlags(cobraCmd, true)

	if root.onStart != nil {
		return root.onStart(c, args)
	}
	return nil
}

// root returns the Command at the root of the tree, which owns the global flags
func (c *Command) root() *Command {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	// Run OnUse functions for non-persistent flags
	c.runFlags(cobraCmd, false)

	for idx, arg := range c.arguments {
		if idx >= len(args) {
			break
		}

		values := args[idx : idx+1]
		if arg.Variadic {
			values = args[idx:]
		}
		if err := arg.set(values); err != nil {
			return err
		}
	}

	logging.Debug("Running %s with args %v", cobraCmd.CommandPath(), args)
	return c.execute(c, args)
}

func (c *Command) runFlags(cobraCmd *cobra.Command, persistOnly bool) {
	cobraCmd.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}

		flag := c.flagByName(cobraFlag.Name, persistOnly)
		if flag == nil || flag.OnUse == nil {
			return
		}

		flag.OnUse()
	})
}

func (c *Command) argValidator(cobraCmd *cobra.Command, args []string) error {
	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return errs.WrapExitCode(errs.NewUserFacing(
				fmt.Sprintf("The '%s' argument is required: %s", arg.Name, arg.Description),
				errs.SetInput(),
				errs.SetTips(fmt.Sprintf("Run '%s --help' for usage information", cobraCmd.CommandPath())),
			), ExitCodeUsage)
		}
	}

	variadic := len(c.arguments) > 0 && c.arguments[len(c.arguments)-1].Variadic
	if !variadic && len(args) > len(c.arguments) {
		if cobraCmd.HasAvailableSubCommands() && len(c.arguments) == 0 {
			return errs.WrapExitCode(errs.NewUserFacing(
				fmt.Sprintf("Unknown command: %s", args[0]),
				errs.SetInput(),
				errs.SetTips(fmt.Sprintf("Run '%s --help' for a list of commands", cobraCmd.CommandPath())),
			), ExitCodeUsage)
		}
		return errs.WrapExitCode(errs.NewUserFacing(
			fmt.Sprintf("Too many arguments, expected at most %d", len(c.arguments)),
			errs.SetInput(),
		), ExitCodeUsage)
	}

	return nil
}
