package sysinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/fileutils"
	"github.com/ActiveState/hostinfo/internal/logging"
)

// FileProbe checks for and reads the fixed set of descriptor files hostinfo knows about
type FileProbe interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSProbe reads files from the real file system
type OSProbe struct{}

func (OSProbe) Exists(path string) bool {
	return fileutils.FileExists(path)
}

func (OSProbe) ReadFile(path string) ([]byte, error) {
	return fileutils.ReadFile(path)
}

// RootedProbe resolves absolute paths below Root, eg. to inspect a mounted image or a chroot. Symbolic links are
// followed as they would be inside the image: absolute targets are resolved against Root and ".." never climbs above
// it, so a link can not lead to a file of the host.
type RootedProbe struct {
	Root string
}

// maxSymlinkHops matches the limit the Linux kernel applies before failing with ELOOP
const maxSymlinkHops = 40

func (p RootedProbe) resolve(path string) (string, error) {
	pending := strings.Split(filepath.ToSlash(path), "/")
	var resolved []string
	hops := 0

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]

		switch name {
		case "", ".":
			continue
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
			continue
		}

		resolved = append(resolved, name)
		current := p.join(resolved)
		fi, err := os.Lstat(current)
		if err != nil {
			if os.IsNotExist(err) {
				return p.join(append(resolved, pending...)), nil
			}
			return "", errs.Wrap(err, "Could not inspect %s", current)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", errs.New("Too many levels of symbolic links below %s resolving %s", p.Root, path)
		}
		target, err := os.Readlink(current)
		if err != nil {
			return "", errs.Wrap(err, "Could not read link %s", current)
		}
		target = filepath.ToSlash(target)

		resolved = resolved[:len(resolved)-1]
		if strings.HasPrefix(target, "/") {
			resolved = nil
		}
		pending = append(strings.Split(target, "/"), pending...)
	}

	return p.join(resolved), nil
}

func (p RootedProbe) join(parts []string) string {
	return filepath.Join(append([]string{p.Root}, parts...)...)
}

func (p RootedProbe) Exists(path string) bool {
	resolved, err := p.resolve(path)
	if err != nil {
		logging.Debug("Could not resolve %s: %s", path, errs.JoinMessage(err, ": "))
		return false
	}
	return fileutils.FileExists(resolved)
}

func (p RootedProbe) ReadFile(path string) ([]byte, error) {
	resolved, err := p.resolve(path)
	if err != nil {
		return nil, err
	}
	return fileutils.ReadFile(resolved)
}
