package captain

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

// FlagMarshaler is a flag value that parses itself
type FlagMarshaler pflag.Value

// ArgMarshaler is an argument value that parses itself
type ArgMarshaler interface {
	Set(string) error
}

// Flag describes a command line flag. Value must be a *string, *bool, *int or FlagMarshaler.
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Persist     bool
	Hidden      bool
	OnUse       func()

	Value interface{}
}

// Argument describes a positional argument. Value must be a *string, *[]string (when Variadic) or ArgMarshaler.
type Argument struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool
	Value       interface{}
}

func (a *Argument) set(values []string) error {
	switch v := a.Value.(type) {
	case *string:
		*v = values[0]
	case *[]string:
		*v = append([]string{}, values...)
	case ArgMarshaler:
		for _, value := range values {
			if err := v.Set(value); err != nil {
				return errs.WrapExitCode(
					errs.WrapUserFacing(err, fmt.Sprintf("Invalid value for argument '%s': %s", a.Name, err.Error()), errs.SetInput()),
					ExitCodeUsage,
				)
			}
		}
	default:
		return errs.New("arg: %s must be *string, *[]string or ArgMarshaler", a.Name)
	}
	return nil
}

func (c *Command) setFlags(flags []*Flag) error {
	for _, flag := range flags {
		flagSetter := c.cobra.Flags
		if flag.Persist {
			flagSetter = c.cobra.PersistentFlags
		}

		switch v := flag.Value.(type) {
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New("flag: %s must be *string, *int, *bool or FlagMarshaler", flag.Name)
		}

		if flag.Hidden {
			if err := flagSetter().MarkHidden(flag.Name); err != nil {
				return errs.Wrap(err, "Could not hide flag %s", flag.Name)
			}
		}
	}
	return nil
}

// OSFamiliesArg collects OS family names, rejecting names that aren't known
type OSFamiliesArg []sysinfo.OSFamily

var _ ArgMarshaler = &OSFamiliesArg{}

func (o *OSFamiliesArg) Set(name string) error {
	family, ok := sysinfo.ParseOSFamily(name)
	if !ok {
		return errs.New("unknown OS family %q", name)
	}
	*o = append(*o, family)
	return nil
}

func (o *OSFamiliesArg) String() string {
	names := []string{}
	for _, family := range *o {
		names = append(names, family.String())
	}
	return strings.Join(names, ", ")
}

// ConstraintFlag holds a version constraint such as ">= 20.04"
type ConstraintFlag struct {
	raw string
}

var _ FlagMarshaler = &ConstraintFlag{}

func (f *ConstraintFlag) Set(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.New("constraint cannot be empty")
	}
	f.raw = v
	return nil
}

func (f *ConstraintFlag) String() string {
	return f.raw
}

func (f *ConstraintFlag) Type() string {
	return "constraint"
}

// IsSet returns whether the flag was given
func (f *ConstraintFlag) IsSet() bool {
	return f.raw != ""
}
