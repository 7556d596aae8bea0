package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	C "github.com/ActiveState/hostinfo/internal/constants"
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

// Keys understood by hostinfo
const (
	RootKey     = "root"
	LogLevelKey = "log_level"
	LogFileKey  = "log_file"
	OutputKey   = "output"
	VerboseKey  = "verbose"
	CacheKey    = "cache"
)

var defaults = map[string]interface{}{
	RootKey:     "",
	LogLevelKey: "NORMAL",
	LogFileKey:  "",
	OutputKey:   "plain",
	VerboseKey:  false,
	CacheKey:    false,
}

// Instance holds our main config logic
type Instance struct {
	viper *viper.Viper
	file  string
}

// New loads configuration from defaults, the optional config file and the environment. Flags are layered on top
// through BindFlags.
func New() (*Instance, error) {
	return NewCustom(os.Getenv(C.ConfigEnvVarName), defaultConfigDirs())
}

// NewCustom is intended only to be used from tests or internally to this package. An explicit file must exist,
// otherwise the first hostinfo.yaml found in dirs is used, if any.
func NewCustom(file string, dirs []string) (*Instance, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(C.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// viper only consults AutomaticEnv for keys it knows about, binding makes the env var names explicit
	v.BindEnv(LogFileKey, C.LogEnvVarName)
	v.BindEnv(VerboseKey, C.VerboseEnvVarName)

	i := &Instance{viper: v}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(C.ConfigName)
		v.SetConfigType(C.ConfigFileType)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errs.Wrap(err, "Could not read config")
		}
		logging.Debug("No config file found in %v", dirs)
	} else {
		i.file = v.ConfigFileUsed()
		logging.Debug("Using config file %s", i.file)
	}

	return i, nil
}

// BindFlags makes the given flags (if present in the set) take precedence over every other config source
func (i *Instance) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{RootKey, LogLevelKey, LogFileKey, OutputKey, VerboseKey, CacheKey} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := i.viper.BindPFlag(key, flag); err != nil {
			return errs.Wrap(err, "Could not bind flag %s", flag.Name)
		}
	}
	return nil
}

// ConfigFileUsed returns the path of the config file that was read, or an empty string
func (i *Instance) ConfigFileUsed() string {
	return i.file
}

func (i *Instance) Root() string {
	return i.viper.GetString(RootKey)
}

func (i *Instance) LogLevel() string {
	return i.viper.GetString(LogLevelKey)
}

func (i *Instance) LogFile() string {
	return i.viper.GetString(LogFileKey)
}

func (i *Instance) Output() string {
	return i.viper.GetString(OutputKey)
}

func (i *Instance) Verbose() bool {
	return i.viper.GetBool(VerboseKey)
}

func (i *Instance) Cache() bool {
	return i.viper.GetBool(CacheKey)
}

// AllSettings returns every resolved setting, useful for debugging
func (i *Instance) AllSettings() map[string]interface{} {
	return i.viper.AllSettings()
}

func defaultConfigDirs() []string {
	dirs := []string{}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, C.ConfigNamespace))
	}
	return append(dirs, ".")
}
