package sysinfo

import (
	gosysinfo "github.com/elastic/go-sysinfo"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ActiveState/hostinfo/internal/errs"
)

// MemoryInfo holds system memory totals, in bytes
type MemoryInfo struct {
	Total     uint64 `json:"total" yaml:"total"`
	Available uint64 `json:"available" yaml:"available"`
	Used      uint64 `json:"used" yaml:"used"`
	SwapTotal uint64 `json:"swap_total" yaml:"swap_total"`
	SwapFree  uint64 `json:"swap_free" yaml:"swap_free"`
}

// ProcessMemoryInfo holds the memory usage of the running process, in bytes
type ProcessMemoryInfo struct {
	Resident uint64 `json:"resident" yaml:"resident"`
	Virtual  uint64 `json:"virtual" yaml:"virtual"`
}

// Memory returns the memory totals of the host
func (h *Host) Memory() (*MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, errs.Wrap(err, "Could not read virtual memory stats")
	}
	info := &MemoryInfo{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		return info, errs.Wrap(err, "Could not read swap stats")
	}
	info.SwapTotal = swap.Total
	info.SwapFree = swap.Free
	return info, nil
}

// ProcessMemory returns the memory used by the running process
func (h *Host) ProcessMemory() (*ProcessMemoryInfo, error) {
	self, err := gosysinfo.Self()
	if err != nil {
		return nil, errs.Wrap(err, "Could not inspect current process")
	}
	m, err := self.Memory()
	if err != nil {
		return nil, errs.Wrap(err, "Could not read process memory")
	}
	return &ProcessMemoryInfo{Resident: m.Resident, Virtual: m.Virtual}, nil
}
