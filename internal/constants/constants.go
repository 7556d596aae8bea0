package constants

// LibraryName contains the main name of this library
const LibraryName = "hostinfo"

// LibraryOwner contains the name of the owner of this library
const LibraryOwner = "ActiveState"

// LibraryNamespace is the namespace that the library belongs to
const LibraryNamespace = "github.com/ActiveState/"

// LibraryLicense is the license that the library is distributed under.
const LibraryLicense = "BSD 3"

// CommandName holds the name of our command
const CommandName = "hostinfo"

// Version is the version of the hostinfo command, overridden at build time through -ldflags
var Version = "0.0.0-dev"

// EnvPrefix is the prefix of every environment variable hostinfo reads its configuration from
const EnvPrefix = "HOSTINFO"

// ConfigEnvVarName is the env var used to point at an explicit config file
const ConfigEnvVarName = "HOSTINFO_CONFIG"

// ConfigName is the base name (without extension) of the config file we look for
const ConfigName = "hostinfo"

// ConfigFileType is the format of the config file
const ConfigFileType = "yaml"

// ConfigNamespace holds the appdata folder name under which we look for our config
const ConfigNamespace = "activestate"

// LogEnvVarName is the env var used to direct the log to a file
const LogEnvVarName = "HOSTINFO_LOGFILE"

// VerboseEnvVarName is the env var used to echo log output to stderr
const VerboseEnvVarName = "HOSTINFO_VERBOSE"

// LinuxMarkerFile only exists on Linux kernels, its presence overrides the reported kernel name
const LinuxMarkerFile = "/proc/sys/kernel/ostype"

// MacOSVersionFile describes the installed macOS product as a property list
const MacOSVersionFile = "/System/Library/CoreServices/SystemVersion.plist"

// Distribution descriptor files, see sysinfo.LinuxDistribution for the order they are probed in.
const (
	LSBReleaseFile       = "/etc/lsb-release"
	OSReleaseFile        = "/etc/os-release"
	SuSEReleaseFile      = "/etc/SuSE-release"
	FedoraReleaseFile    = "/etc/fedora-release"
	MandrakeReleaseFile  = "/etc/mandrake-release"
	CentOSReleaseFile    = "/etc/centos-release"
	GentooReleaseFile    = "/etc/gentoo-release"
	SlackwareVersionFile = "/etc/slackware-version"
	RedhatReleaseFile    = "/etc/redhat-release"
	DebianVersionFile    = "/etc/debian_version"
	IssueFile            = "/etc/issue"
)

// OSVersionOverrideEnvVarName is used to override the reported kernel release
const OSVersionOverrideEnvVarName = "HOSTINFO_OSVERSION_OVERRIDE"
