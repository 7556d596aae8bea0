//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package sysinfo

import (
	"github.com/shirou/gopsutil/v3/host"

	"github.com/ActiveState/hostinfo/internal/errs"
)

// Uname assembles uname-like fields from the host information the OS exposes, as there is no uname(2) here
func (PlatformAccessor) Uname() (*Uname, error) {
	info, err := host.Info()
	if err != nil {
		return nil, errs.Wrap(err, "Could not read host info")
	}
	return &Uname{
		Sysname:  info.OS,
		Nodename: info.Hostname,
		Release:  info.PlatformVersion,
		Version:  info.KernelVersion,
		Machine:  info.KernelArch,
	}, nil
}
