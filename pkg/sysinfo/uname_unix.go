//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package sysinfo

import (
	"golang.org/x/sys/unix"

	"github.com/ActiveState/hostinfo/internal/errs"
)

// Uname returns the fields reported by uname(2)
func (PlatformAccessor) Uname() (*Uname, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, errs.Wrap(err, "Could not call uname")
	}
	return &Uname{
		Sysname:  unix.ByteSliceToString(uts.Sysname[:]),
		Nodename: unix.ByteSliceToString(uts.Nodename[:]),
		Release:  unix.ByteSliceToString(uts.Release[:]),
		Version:  unix.ByteSliceToString(uts.Version[:]),
		Machine:  unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}
