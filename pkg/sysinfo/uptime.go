package sysinfo

import (
	"github.com/shirou/gopsutil/v3/host"

	"github.com/ActiveState/hostinfo/internal/errs"
)

// Uptime returns how long the host has been up, in seconds
func (h *Host) Uptime() (uint64, error) {
	uptime, err := host.Uptime()
	if err != nil {
		return 0, errs.Wrap(err, "Could not read uptime")
	}
	return uptime, nil
}
