package cmdtree

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ActiveState/hostinfo/internal/captain"
	"github.com/ActiveState/hostinfo/internal/config"
	"github.com/ActiveState/hostinfo/internal/constants"
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/fileutils"
	"github.com/ActiveState/hostinfo/internal/logging"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/internal/runners/facts"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

// CmdTree manages a tree of captain.Command instances.
type CmdTree struct {
	cmd     *captain.Command
	cfg     *config.Instance
	globals *globalOptions
	prime   *primer.Values
	stdout  io.Writer
	stderr  io.Writer
}

// New prepares a CmdTree. Runners are primed once flags have been parsed, as the global flags decide how output,
// logging and the host are set up.
func New(cfg *config.Instance, stdout, stderr io.Writer) *CmdTree {
	ct := &CmdTree{
		cfg:     cfg,
		globals: &globalOptions{},
		stdout:  stdout,
		stderr:  stderr,
	}

	ct.cmd = newHostinfoCommand(ct)
	ct.cmd.AddChildren(
		newFactsCommand(ct),
		newOSCommand(ct),
		newDistroCommand(ct),
		newIsCommand(ct),
		newExpandCommand(ct),
	)
	ct.cmd.SetVersion(constants.Version)
	ct.cmd.SetOutput(stdout, stderr)
	ct.cmd.OnExecStart(ct.prepare)

	return ct
}

type globalOptions struct {
	Output   string
	Root     string
	Verbose  bool
	LogLevel string
	LogFile  string
	Config   string
	Cache    bool
}

func newHostinfoCommand(ct *CmdTree) *captain.Command {
	return captain.NewCommand(
		constants.CommandName,
		"Reports facts about the host it runs on. Without a command all facts are reported.",
		[]*captain.Flag{
			{
				Name:        "output",
				Shorthand:   "o",
				Description: "Output format: plain, json or yaml",
				Persist:     true,
				Value:       &ct.globals.Output,
			},
			{
				Name:        "root",
				Description: "Read OS descriptor files below this directory instead of /",
				Persist:     true,
				Value:       &ct.globals.Root,
			},
			{
				Name:        "verbose",
				Shorthand:   "v",
				Description: "Echo debug logging to stderr",
				Persist:     true,
				OnUse: func() {
					logging.SetVerbose(true)
				},
				Value: &ct.globals.Verbose,
			},
			{
				Name:        "log-level",
				Description: "Minimal level of logged messages, eg. DEBUG or ERROR",
				Persist:     true,
				Value:       &ct.globals.LogLevel,
			},
			{
				Name:        "log-file",
				Description: "Also write logging to this file",
				Persist:     true,
				Value:       &ct.globals.LogFile,
			},
			{
				Name:        "config",
				Description: "Config file to use, instead of the default hostinfo.yaml lookup",
				Persist:     true,
				Value:       &ct.globals.Config,
			},
			{
				Name:        "cache",
				Description: "Memoize OS and distribution lookups for the duration of the command",
				Persist:     true,
				Hidden:      true,
				Value:       &ct.globals.Cache,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return facts.New(ct.prime).Run()
		},
	)
}

// prepare applies the resolved configuration. It runs after flag parsing and before any runner.
func (ct *CmdTree) prepare(cmd *captain.Command, _ []string) error {
	if ct.globals.Config != "" {
		cfg, err := config.NewCustom(ct.globals.Config, nil)
		if err != nil {
			return errs.WrapExitCode(
				errs.WrapUserFacing(err, "Could not read config file: "+ct.globals.Config, errs.SetInput()),
				captain.ExitCodeUsage,
			)
		}
		ct.cfg = cfg
	}
	if err := ct.cfg.BindFlags(ct.cmd.PersistentFlags()); err != nil {
		return errs.Wrap(err, "Could not apply flags")
	}

	if err := logging.SetMinimalLevelByName(ct.cfg.LogLevel()); err != nil {
		return errs.WrapExitCode(
			errs.WrapUserFacing(err, "Invalid log level: "+ct.cfg.LogLevel(), errs.SetInput()),
			captain.ExitCodeUsage,
		)
	}
	if ct.cfg.Verbose() {
		logging.SetVerbose(true)
		logging.SetLevel(logging.ALL)
	}
	if ct.cfg.LogFile() != "" {
		if err := logging.SetLogFile(ct.cfg.LogFile()); err != nil {
			return errs.WrapUserFacing(err, "Could not open log file: "+ct.cfg.LogFile())
		}
	}
	logging.Info("%s %s running %s", constants.CommandName, constants.Version, cmd.Name())
	logging.Debug("Config file: %s, settings: %v", ct.cfg.ConfigFileUsed(), ct.cfg.AllSettings())

	out, err := output.New(ct.cfg.Output(), ct.outputConfig())
	if err != nil {
		return errs.WrapExitCode(
			errs.WrapUserFacing(err, "Unknown output format: "+ct.cfg.Output(),
				errs.SetInput(), errs.SetTips("Supported formats are plain, json and yaml")),
			captain.ExitCodeUsage,
		)
	}

	if root := ct.cfg.Root(); root != "" && !fileutils.DirExists(root) {
		logging.Warning("Root %s is not a directory, no descriptor files will be found below it", root)
	}
	host := sysinfo.New(sysinfo.WithRoot(ct.cfg.Root()))
	var cache *sysinfo.Cache
	if ct.cfg.Cache() {
		cache = sysinfo.NewCache(host)
	}
	ct.prime = primer.New(out, ct.cfg, host, cache)

	return nil
}

func (ct *CmdTree) outputConfig() *output.Config {
	return &output.Config{
		OutWriter: ct.stdout,
		ErrWriter: ct.stderr,
		Colored:   isTerminal(ct.stdout) && !color.NoColor,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Output returns the outputer chosen through the flags, or a plain outputer if flags haven't been applied (yet)
func (ct *CmdTree) Output() output.Outputer {
	if ct.prime != nil {
		return ct.prime.Output()
	}
	out, _ := output.New(string(output.PlainFormatName), ct.outputConfig())
	return out
}

// Execute runs the CmdTree using the provided CLI arguments.
func (ct *CmdTree) Execute(args []string) error {
	return ct.cmd.Execute(args)
}
