package user

import (
	"os"
	osuser "os/user"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/osutils"
)

// usernameEnvVars are consulted in order before asking the OS user database
var usernameEnvVars = []string{"USER", "LOGNAME", "USERNAME"}

// HomeDir returns the user's homedir
func HomeDir() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return dir, nil
}

// Username returns the name of the current user. The environment wins over the user database, as it is what the
// user's shell reports.
func Username(env osutils.Env) (string, error) {
	for _, name := range usernameEnvVars {
		if v := env.Getenv(name); v != "" {
			return v, nil
		}
	}

	u, err := osuser.Current()
	if err != nil {
		return "", errs.Wrap(err, "Could not determine current user")
	}
	return u.Username, nil
}
