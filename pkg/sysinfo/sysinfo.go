// Package sysinfo exposes read-only facts about the host: its OS family, kernel, Linux distribution, CPU, memory,
// current user and the Go runtime the process runs on.
//
// The package level functions use a Host backed by the running system. None of them cache, use NewCache for that.
package sysinfo

var defaultHost = New()

// OS returns the OS family of the running system
func OS() OSFamily { return defaultHost.OS() }

// System returns the kernel name of the running system
func System() (string, error) { return defaultHost.System() }

// Release returns the kernel release of the running system
func Release() (string, error) { return defaultHost.Release() }

// Version returns the kernel version of the running system
func Version() (string, error) { return defaultHost.Version() }

// Machine returns the machine hardware name of the running system
func Machine() (string, error) { return defaultHost.Machine() }

// Hostname returns the hostname of the running system
func Hostname() (string, error) { return defaultHost.Hostname() }

// Architecture returns the CPU architecture of the running system
func Architecture() ArchInfo { return defaultHost.Architecture() }

// LinuxDistribution identifies the Linux distribution of the running system
func LinuxDistribution() DistributionInfo { return defaultHost.LinuxDistribution() }

// MacOS returns the macOS product version of the running system
func MacOS() (*MacOSVersion, error) { return defaultHost.MacOSVersion() }

// User returns the name of the current user
func User() (string, error) { return defaultHost.User() }

// CPU returns the core counts and model of the running system
func CPU() (*CPUInfo, error) { return defaultHost.CPU() }

// Memory returns the memory totals of the running system
func Memory() (*MemoryInfo, error) { return defaultHost.Memory() }

// Runtime returns information about the running Go runtime
func Runtime() (*RuntimeInfo, error) { return defaultHost.Runtime() }

// Collect gathers every fact about the running system
func Collect() *Facts { return defaultHost.Collect() }
