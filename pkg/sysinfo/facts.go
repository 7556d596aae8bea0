package sysinfo

import (
	"github.com/ActiveState/hostinfo/internal/errs"
)

// Facts is everything hostinfo knows about the host, as gathered by Collect
type Facts struct {
	OS           OSFamily           `json:"os" yaml:"os"`
	Ancestors    []OSFamily         `json:"os_ancestors" yaml:"os_ancestors"`
	Uname        *Uname             `json:"uname,omitempty" yaml:"uname,omitempty"`
	Architecture ArchInfo           `json:"architecture" yaml:"architecture"`
	Distribution DistributionInfo   `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	MacOS        *MacOSVersion      `json:"macos,omitempty" yaml:"macos,omitempty"`
	Hostname     string             `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	User         string             `json:"user,omitempty" yaml:"user,omitempty"`
	CPU          *CPUInfo           `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory       *MemoryInfo        `json:"memory,omitempty" yaml:"memory,omitempty"`
	Process      *ProcessMemoryInfo `json:"process_memory,omitempty" yaml:"process_memory,omitempty"`
	Uptime       uint64             `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	Runtime      *RuntimeInfo       `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	// Errors holds the reason each fact that could not be gathered is missing, keyed by fact
	Errors map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (f *Facts) recordErr(fact string, err error) {
	if err == nil {
		return
	}
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	f.Errors[fact] = errs.JoinMessage(err, ": ")
}

// Querier answers the questions that a Cache can memoize. Both Host and Cache implement it.
type Querier interface {
	OS() OSFamily
	Uname() (*Uname, error)
	LinuxDistribution() DistributionInfo
	MacOSVersion() (*MacOSVersion, error)
	Collect() *Facts
}

var _ Querier = &Host{}
var _ Querier = &Cache{}

// Collect gathers every fact about the host. Facts that cannot be gathered are left empty and their error recorded
// in Facts.Errors, a failing fact never prevents the others from being collected.
func (h *Host) Collect() *Facts {
	return collect(h, h)
}

func collect(q Querier, h *Host) *Facts {
	f := &Facts{}

	f.OS = q.OS()
	f.Ancestors = f.OS.Ancestors()
	f.Architecture = h.Architecture()

	var err error
	f.Uname, err = q.Uname()
	f.recordErr("uname", err)

	if IsOS(f.OS, Linux) {
		f.Distribution = q.LinuxDistribution()
	}
	if IsOS(f.OS, Darwin) {
		f.MacOS, err = q.MacOSVersion()
		f.recordErr("macos", err)
	}

	f.Hostname, err = h.Hostname()
	f.recordErr("hostname", err)
	f.User, err = h.User()
	f.recordErr("user", err)
	f.CPU, err = h.CPU()
	f.recordErr("cpu", err)
	f.Memory, err = h.Memory()
	f.recordErr("memory", err)
	f.Process, err = h.ProcessMemory()
	f.recordErr("process_memory", err)
	f.Uptime, err = h.Uptime()
	f.recordErr("uptime", err)
	f.Runtime, err = h.Runtime()
	f.recordErr("runtime", err)

	return f
}
