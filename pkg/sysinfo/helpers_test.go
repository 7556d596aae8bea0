package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/osutils"
)

// Env is the osutils type itself, so any osutils environment plugs into a Host
var _ Env = osutils.Env(osutils.MapEnv{})

type fakeAccessor struct {
	uname *Uname
	err   error
	calls int
}

func (f *fakeAccessor) Uname() (*Uname, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u := *f.uname
	return &u, nil
}

func linuxUname() *Uname {
	return &Uname{
		Sysname:  "Linux",
		Nodename: "buildbox",
		Release:  "5.15.0-91-generic",
		Version:  "#101-Ubuntu SMP Tue Nov 14 13:30:08 UTC 2023",
		Machine:  "x86_64",
	}
}

// writeTree writes files (keyed by absolute path) below a fresh root and returns the root
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, contents := range files {
		target := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, []byte(contents), 0644))
	}
	return root
}

func newTestHost(t *testing.T, u *Uname, files map[string]string) (*Host, *fakeAccessor) {
	t.Helper()
	accessor := &fakeAccessor{uname: u}
	if u == nil {
		accessor.err = errs.New("uname is unavailable")
	}
	h := New(
		WithAccessor(accessor),
		WithRoot(writeTree(t, files)),
		WithEnv(osutils.MapEnv{}),
	)
	return h, accessor
}
