package sysinfo

import (
	"os"
	"runtime"
	"strconv"

	"github.com/ActiveState/hostinfo/internal/errs"
)

// RuntimeInfo describes the Go runtime the process is running on
type RuntimeInfo struct {
	Version    string `json:"version" yaml:"version"`
	Bits       int    `json:"bits" yaml:"bits"`
	Executable string `json:"executable" yaml:"executable"`
	GOOS       string `json:"goos" yaml:"goos"`
	GOARCH     string `json:"goarch" yaml:"goarch"`
	Compiler   string `json:"compiler" yaml:"compiler"`
}

// Runtime returns the version, pointer width and binary path of the running process
func (h *Host) Runtime() (*RuntimeInfo, error) {
	info := &RuntimeInfo{
		Version:  runtime.Version(),
		Bits:     strconv.IntSize,
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		Compiler: runtime.Compiler,
	}

	exe, err := os.Executable()
	if err != nil {
		return info, errs.Wrap(err, "Could not determine executable path")
	}
	info.Executable = exe
	return info, nil
}
