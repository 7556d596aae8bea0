package sysinfo

import (
	"runtime"
	"strings"
)

// ArchInfo represents an architecture returned by Architecture().
type ArchInfo int

const (
	// I386 represents the Intel x86 (32-bit) architecture.
	I386 ArchInfo = iota
	// Amd64 represents the x86_64 (64-bit) architecture.
	Amd64
	// Arm represents the 32-bit ARM architecture.
	Arm
	// Arm64 represents the 64-bit ARM architecture.
	Arm64
	// UnknownArch represents an unknown architecture.
	UnknownArch
)

func (i ArchInfo) String() string {
	switch i {
	case I386:
		return "i386"
	case Amd64:
		return "x86_64"
	case Arm:
		return "ARM"
	case Arm64:
		return "ARM64"
	default:
		return "Unknown"
	}
}

// MarshalText renders the architecture by name
func (i ArchInfo) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// ParseArch maps a machine name, as reported by uname or GOARCH, onto an architecture
func ParseArch(machine string) ArchInfo {
	machine = strings.ToLower(strings.TrimSpace(machine))
	switch machine {
	case "i386", "i486", "i586", "i686", "x86", "386", "i86pc":
		return I386
	case "x86_64", "amd64", "x64":
		return Amd64
	case "aarch64", "arm64", "armv8l", "aarch64_be":
		return Arm64
	}
	if strings.HasPrefix(machine, "arm") {
		return Arm
	}
	return UnknownArch
}

// Architecture returns the CPU architecture of the host. If the platform reports a machine name we don't recognize
// the architecture the process was built for is used instead.
func (h *Host) Architecture() ArchInfo {
	if u, err := h.accessor.Uname(); err == nil {
		if arch := ParseArch(u.Machine); arch != UnknownArch {
			return arch
		}
	}
	return ParseArch(runtime.GOARCH)
}
