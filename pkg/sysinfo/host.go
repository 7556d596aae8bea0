package sysinfo

import (
	"os"
	"strings"

	"github.com/ActiveState/hostinfo/internal/constants"
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
	"github.com/ActiveState/hostinfo/internal/osutils"
	"github.com/ActiveState/hostinfo/internal/osutils/user"
)

// Env gives access to environment variables
type Env = osutils.Env

// Host answers questions about the system through its collaborators. It holds no other state: every call computes
// its answer from scratch, so a Host is safe for concurrent use.
type Host struct {
	accessor Accessor
	files    FileProbe
	env      Env
}

// Option configures a Host
type Option func(h *Host)

// WithAccessor replaces the source of uname information
func WithAccessor(a Accessor) Option {
	return func(h *Host) { h.accessor = a }
}

// WithFileProbe replaces how descriptor files are checked and read
func WithFileProbe(f FileProbe) Option {
	return func(h *Host) { h.files = f }
}

// WithRoot reads descriptor files below the given root instead of /
func WithRoot(root string) Option {
	return func(h *Host) {
		if root != "" {
			h.files = RootedProbe{root}
		}
	}
}

// WithEnv replaces the environment variable accessor
func WithEnv(env Env) Option {
	return func(h *Host) { h.env = env }
}

// New returns a Host backed by the running system, unless overridden by opts
func New(opts ...Option) *Host {
	h := &Host{
		accessor: PlatformAccessor{},
		files:    OSProbe{},
		env:      osutils.ProcessEnv{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OS returns the OS family of the host. A Linux marker file is more specific than the kernel name, so it is checked
// first.
func (h *Host) OS() OSFamily {
	if h.files.Exists(constants.LinuxMarkerFile) {
		return Linux
	}

	u, err := h.accessor.Uname()
	if err != nil {
		logging.Debug("Could not classify OS: %s", errs.JoinMessage(err, ": "))
		return Unknown
	}
	return Classify(strings.ToLower(u.Sysname))
}

// Uname returns the platform strings, with the release replaced when HOSTINFO_OSVERSION_OVERRIDE is set
func (h *Host) Uname() (*Uname, error) {
	u, err := h.accessor.Uname()
	if err != nil {
		return nil, err
	}
	if v := h.releaseOverride(); v != "" {
		u.Release = v
	}
	return u, nil
}

func (h *Host) releaseOverride() string {
	return h.env.Getenv(constants.OSVersionOverrideEnvVarName)
}

// System returns the kernel name, eg. "Linux"
func (h *Host) System() (string, error) {
	u, err := h.accessor.Uname()
	if err != nil {
		return "", err
	}
	return u.Sysname, nil
}

// Release returns the kernel release, eg. "5.15.0-91-generic". It can be overridden through the
// HOSTINFO_OSVERSION_OVERRIDE environment variable, which also applies when uname is unavailable.
func (h *Host) Release() (string, error) {
	if v := h.releaseOverride(); v != "" {
		return v, nil
	}
	u, err := h.accessor.Uname()
	if err != nil {
		return "", err
	}
	return u.Release, nil
}

// Version returns the kernel version, eg. "#101-Ubuntu SMP Tue Nov 14 13:30:08 UTC 2023"
func (h *Host) Version() (string, error) {
	u, err := h.accessor.Uname()
	if err != nil {
		return "", err
	}
	return u.Version, nil
}

// Machine returns the raw machine hardware name, eg. "x86_64"
func (h *Host) Machine() (string, error) {
	u, err := h.accessor.Uname()
	if err != nil {
		return "", err
	}
	return u.Machine, nil
}

// Hostname returns the network node name of the host
func (h *Host) Hostname() (string, error) {
	u, err := h.accessor.Uname()
	if err == nil && u.Nodename != "" {
		return u.Nodename, nil
	}
	name, herr := os.Hostname()
	if herr != nil {
		return "", errs.Wrap(herr, "Could not determine hostname")
	}
	return name, nil
}

// User returns the name of the current user
func (h *Host) User() (string, error) {
	return user.Username(h.env)
}

// Getenv returns the value of the named environment variable
func (h *Host) Getenv(name string) string {
	return h.env.Getenv(name)
}

// HasEnv returns whether the named environment variable is set, even if empty
func (h *Host) HasEnv(name string) bool {
	return osutils.HasEnv(h.env, name)
}

// Setenv sets the named environment variable
func (h *Host) Setenv(name, value string) error {
	if err := h.env.Setenv(name, value); err != nil {
		return errs.Wrap(err, "Could not set %s", name)
	}
	return nil
}

// Unsetenv removes the named environment variable
func (h *Host) Unsetenv(name string) error {
	if err := h.env.Unsetenv(name); err != nil {
		return errs.Wrap(err, "Could not unset %s", name)
	}
	return nil
}

// ExpandVars replaces $VAR and ${VAR} references with their values, leaving references to unset variables as is
func (h *Host) ExpandVars(value string) string {
	return osutils.ExpandVars(h.env, value)
}
