package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

// CPUInfo describes the processors of the host
type CPUInfo struct {
	Logical   int    `json:"logical" yaml:"logical"`
	Physical  int    `json:"physical,omitempty" yaml:"physical,omitempty"`
	ModelName string `json:"model_name,omitempty" yaml:"model_name,omitempty"`
}

// CPUCount returns the number of logical CPUs usable by the process
func CPUCount() int {
	return runtime.NumCPU()
}

// CPU returns the logical and physical core counts, and the model name when the platform exposes it
func (h *Host) CPU() (*CPUInfo, error) {
	info := &CPUInfo{Logical: CPUCount()}

	physical, err := cpu.Counts(false)
	if err != nil {
		return info, errs.Wrap(err, "Could not count physical cores")
	}
	info.Physical = physical

	stats, err := cpu.Info()
	if err != nil {
		logging.Debug("Could not read CPU model: %v", err)
		return info, nil
	}
	if len(stats) > 0 {
		info.ModelName = stats[0].ModelName
	}
	return info, nil
}
