package sysinfo

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/ActiveState/hostinfo/internal/constants"
	"github.com/ActiveState/hostinfo/internal/errs"
	"github.com/ActiveState/hostinfo/internal/logging"
)

// Keys of DistributionInfo. No other keys are ever set.
const (
	DistName       = "name"
	DistRelease    = "release"
	DistCodename   = "codename"
	DistPrettyName = "pretty_name"
)

// DistributionInfo identifies a Linux distribution. Keys that could not be determined are absent rather than empty.
type DistributionInfo map[string]string

func (d DistributionInfo) Name() string       { return d[DistName] }
func (d DistributionInfo) Release() string    { return d[DistRelease] }
func (d DistributionInfo) Codename() string   { return d[DistCodename] }
func (d DistributionInfo) PrettyName() string { return d[DistPrettyName] }

// Satisfies checks the release against a version constraint such as ">= 20.04"
func (d DistributionInfo) Satisfies(constraint string) (bool, error) {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return false, errs.Wrap(err, "Invalid version constraint: %s", constraint)
	}
	release, ok := d[DistRelease]
	if !ok {
		return false, errs.New("Distribution release is unknown")
	}
	v, err := version.NewVersion(release)
	if err != nil {
		return false, errs.Wrap(err, "Distribution release is not a version: %s", release)
	}
	return c.Check(v), nil
}

func (d DistributionInfo) set(key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		d[key] = value
	}
}

type distParser func(files FileProbe, path string) (DistributionInfo, error)

type descriptor struct {
	path  string
	parse distParser
}

// descriptors are probed in order, the first one that exists is the only one used. The Debian version file comes
// late as most Debian derivatives carry it too, and /etc/issue is a last resort.
var descriptors = []descriptor{
	{constants.LSBReleaseFile, varsParser([]varMapping{
		{DistName, []string{"distrib_id"}},
		{DistRelease, []string{"distrib_release"}},
		{DistCodename, []string{"distrib_codename"}},
		{DistPrettyName, []string{"distrib_description"}},
	})},
	{constants.OSReleaseFile, varsParser([]varMapping{
		{DistName, []string{"id", "name"}},
		{DistRelease, []string{"version_id"}},
		{DistCodename, []string{"version_codename", "ubuntu_codename"}},
		{DistPrettyName, []string{"pretty_name"}},
	})},
	{constants.SuSEReleaseFile, parseSuSE},
	{constants.FedoraReleaseFile, textParser("fedora")},
	{constants.MandrakeReleaseFile, textParser("mandrake")},
	{constants.CentOSReleaseFile, textParser("centos")},
	{constants.GentooReleaseFile, presenceParser("gentoo")},
	{constants.SlackwareVersionFile, textParser("slackware")},
	{constants.RedhatReleaseFile, textParser("redhat")},
	{constants.DebianVersionFile, parseDebian},
	{constants.IssueFile, parseIssue},
}

var (
	releaseRx   = regexp.MustCompile(`\d+(\.\d+)*`)
	codenameRx  = regexp.MustCompile(`\(([^)]*)\)`)
	gettyRx     = regexp.MustCompile(`\\.`)
	issueNameRx = regexp.MustCompile(`^(.*?)\s*\d+(\.\d+)*`)
	spacesRx    = regexp.MustCompile(`\s+`)
)

// LinuxDistribution identifies the Linux distribution. It returns an empty result when the host is not Linux, or
// when the distribution cannot be identified.
//
// Only the first descriptor file that exists is consulted, even if it turns out to be unparseable.
func (h *Host) LinuxDistribution() DistributionInfo {
	if !IsOS(h.OS(), Linux) {
		return DistributionInfo{}
	}

	for _, d := range descriptors {
		if !h.files.Exists(d.path) {
			continue
		}
		logging.Debug("Identifying distribution from %s", d.path)
		info, err := d.parse(h.files, d.path)
		if err != nil {
			logging.Debug("Could not identify distribution from %s: %s", d.path, errs.JoinMessage(err, ": "))
			return DistributionInfo{}
		}
		return info
	}

	logging.Debug("No distribution descriptor files found")
	return DistributionInfo{}
}

type varMapping struct {
	key  string
	vars []string
}

// varsParser maps the variables of a KEY=value file onto DistributionInfo keys, the first non-empty variable wins
func varsParser(mappings []varMapping) distParser {
	return func(files FileProbe, path string) (DistributionInfo, error) {
		vars, err := ParseReleaseFile(files, path)
		if err != nil {
			return nil, err
		}

		info := DistributionInfo{}
		for _, m := range mappings {
			for _, name := range m.vars {
				if value := strings.TrimSpace(vars[name]); value != "" {
					info.set(m.key, value)
					break
				}
			}
		}
		if name, ok := info[DistName]; ok {
			info[DistName] = strings.ToLower(name)
		}
		return info, nil
	}
}

// textParser handles single line files such as "CentOS Linux release 7.9.2009 (Core)"
func textParser(name string) distParser {
	return func(files FileProbe, path string) (DistributionInfo, error) {
		line, err := firstLine(files, path)
		if err != nil {
			return nil, err
		}

		info := DistributionInfo{DistName: name}
		info.set(DistRelease, releaseRx.FindString(line))
		if m := codenameRx.FindStringSubmatch(line); m != nil {
			info.set(DistCodename, m[1])
		}
		info.set(DistPrettyName, line)
		return info, nil
	}
}

func presenceParser(name string) distParser {
	return func(FileProbe, string) (DistributionInfo, error) {
		return DistributionInfo{DistName: name}, nil
	}
}

// parseSuSE handles a free text first line followed by "VERSION = 11" style variables
func parseSuSE(files FileProbe, path string) (DistributionInfo, error) {
	line, err := firstLine(files, path)
	if err != nil {
		return nil, err
	}
	vars, err := ParseReleaseFile(files, path)
	if err != nil {
		return nil, err
	}

	info := DistributionInfo{DistName: "suse"}
	if !releaseVarRx.MatchString(line) {
		info.set(DistName, strings.ToLower(strings.Fields(line)[0]))
		info.set(DistPrettyName, line)
	}
	info.set(DistRelease, vars["version"])
	if patch := vars["patchlevel"]; patch != "" && vars["version"] != "" {
		info.set(DistRelease, vars["version"]+"."+patch)
	}
	info.set(DistCodename, vars["codename"])
	return info, nil
}

// parseDebian handles /etc/debian_version, which holds either a version ("10.7") or a codename ("bullseye/sid")
func parseDebian(files FileProbe, path string) (DistributionInfo, error) {
	line, err := firstLine(files, path)
	if err != nil {
		return nil, err
	}

	info := DistributionInfo{DistName: "debian"}
	if release := releaseRx.FindString(line); release != "" {
		info.set(DistRelease, release)
	} else {
		info.set(DistCodename, line)
	}
	return info, nil
}

// parseIssue makes a best effort at the free text login banner in /etc/issue, eg. "Ubuntu 20.04.1 LTS \n \l".
// Lines that are nothing but getty escapes (Fedora ships "\S") and the "Kernel \r on an \m" banner are skipped.
func parseIssue(files FileProbe, path string) (DistributionInfo, error) {
	content, err := files.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read %s", path)
	}

	var line string
	for _, l := range strings.Split(string(content), "\n") {
		l = gettyRx.ReplaceAllString(l, "")
		l = strings.ReplaceAll(l, "()", "")
		l = strings.TrimSpace(spacesRx.ReplaceAllString(l, " "))
		if l == "" || strings.HasPrefix(strings.ToLower(l), "kernel ") {
			continue
		}
		line = l
		break
	}
	if line == "" {
		return nil, &ParseError{path, "only contains escape sequences"}
	}

	info := DistributionInfo{}
	if m := issueNameRx.FindStringSubmatch(line); m != nil {
		name := strings.TrimSuffix(strings.ToLower(m[1]), " release")
		info.set(DistName, name)
		info.set(DistRelease, releaseRx.FindString(line))
	} else {
		info.set(DistName, strings.ToLower(line))
	}
	info.set(DistPrettyName, line)
	return info, nil
}

// firstLine returns the first non-blank line of the file, trimmed
func firstLine(files FileProbe, path string) (string, error) {
	content, err := files.ReadFile(path)
	if err != nil {
		return "", errs.Wrap(err, "Could not read %s", path)
	}
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", &ParseError{path, "file is empty"}
}
