package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/hostinfo/internal/osutils"
)

const (
	lsbRelease = `DISTRIB_ID=Ubuntu
DISTRIB_RELEASE=18.04
DISTRIB_CODENAME=bionic
DISTRIB_DESCRIPTION="Ubuntu 18.04.6 LTS"
`
	osRelease = `ID=ubuntu
VERSION_ID="20.04"
PRETTY_NAME="Ubuntu 20.04 LTS"
`
)

func TestLinuxDistributionRequiresLinux(t *testing.T) {
	files := map[string]string{
		"/etc/lsb-release": lsbRelease,
		"/etc/os-release":  osRelease,
		"/etc/issue":       "Ubuntu 20.04.1 LTS \\n \\l\n",
	}
	for _, sysname := range []string{"Darwin", "FreeBSD", "Windows", "plan9"} {
		t.Run(sysname, func(t *testing.T) {
			h, _ := newTestHost(t, &Uname{Sysname: sysname}, files)
			assert.Empty(t, h.LinuxDistribution())
		})
	}

	t.Run("uname failure", func(t *testing.T) {
		h, _ := newTestHost(t, nil, files)
		assert.Equal(t, Unknown, h.OS())
		assert.Empty(t, h.LinuxDistribution())
	})
}

func TestLinuxDistributionOSRelease(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{"/etc/os-release": osRelease})

	assert.Equal(t, DistributionInfo{
		"name":        "ubuntu",
		"release":     "20.04",
		"pretty_name": "Ubuntu 20.04 LTS",
	}, h.LinuxDistribution())
}

func TestLinuxDistributionPrefersLSB(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{
		"/etc/lsb-release": lsbRelease,
		"/etc/os-release":  osRelease,
	})

	assert.Equal(t, DistributionInfo{
		"name":        "ubuntu",
		"release":     "18.04",
		"codename":    "bionic",
		"pretty_name": "Ubuntu 18.04.6 LTS",
	}, h.LinuxDistribution())
}

func TestLinuxDistributionDescriptors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  DistributionInfo
	}{
		{
			"os-release codename",
			map[string]string{"/etc/os-release": "NAME=\"Debian GNU/Linux\"\nVERSION_ID=\"11\"\nVERSION_CODENAME=bullseye\n"},
			DistributionInfo{"name": "debian gnu/linux", "release": "11", "codename": "bullseye"},
		},
		{
			"suse",
			map[string]string{"/etc/SuSE-release": "SUSE Linux Enterprise Server 11 (x86_64)\nVERSION = 11\nPATCHLEVEL = 4\n"},
			DistributionInfo{"name": "suse", "release": "11.4", "pretty_name": "SUSE Linux Enterprise Server 11 (x86_64)"},
		},
		{
			"opensuse",
			map[string]string{"/etc/SuSE-release": "openSUSE 13.1 (x86_64)\nVERSION = 13.1\nCODENAME = Bottle\n"},
			DistributionInfo{"name": "opensuse", "release": "13.1", "codename": "Bottle", "pretty_name": "openSUSE 13.1 (x86_64)"},
		},
		{
			"fedora",
			map[string]string{"/etc/fedora-release": "Fedora release 33 (Thirty Three)\n"},
			DistributionInfo{"name": "fedora", "release": "33", "codename": "Thirty Three", "pretty_name": "Fedora release 33 (Thirty Three)"},
		},
		{
			"mandrake",
			map[string]string{"/etc/mandrake-release": "Mandrake Linux release 10.1 (Community) for i586\n"},
			DistributionInfo{"name": "mandrake", "release": "10.1", "codename": "Community", "pretty_name": "Mandrake Linux release 10.1 (Community) for i586"},
		},
		{
			"centos over redhat",
			map[string]string{
				"/etc/centos-release": "CentOS Linux release 7.9.2009 (Core)\n",
				"/etc/redhat-release": "Red Hat Enterprise Linux Server release 7.9 (Maipo)\n",
			},
			DistributionInfo{"name": "centos", "release": "7.9.2009", "codename": "Core", "pretty_name": "CentOS Linux release 7.9.2009 (Core)"},
		},
		{
			"gentoo is presence only",
			map[string]string{"/etc/gentoo-release": "Gentoo Base System release 2.7\n"},
			DistributionInfo{"name": "gentoo"},
		},
		{
			"slackware",
			map[string]string{"/etc/slackware-version": "Slackware 14.2\n"},
			DistributionInfo{"name": "slackware", "release": "14.2", "pretty_name": "Slackware 14.2"},
		},
		{
			"redhat",
			map[string]string{"/etc/redhat-release": "Red Hat Enterprise Linux Server release 7.9 (Maipo)\n"},
			DistributionInfo{"name": "redhat", "release": "7.9", "codename": "Maipo", "pretty_name": "Red Hat Enterprise Linux Server release 7.9 (Maipo)"},
		},
		{
			"debian version",
			map[string]string{"/etc/debian_version": "10.7\n"},
			DistributionInfo{"name": "debian", "release": "10.7"},
		},
		{
			"debian codename",
			map[string]string{"/etc/debian_version": "bullseye/sid\n"},
			DistributionInfo{"name": "debian", "codename": "bullseye/sid"},
		},
		{
			"debian version loses to derivatives",
			map[string]string{
				"/etc/debian_version": "bullseye/sid\n",
				"/etc/os-release":     osRelease,
			},
			DistributionInfo{"name": "ubuntu", "release": "20.04", "pretty_name": "Ubuntu 20.04 LTS"},
		},
		{
			"issue fallback",
			map[string]string{"/etc/issue": "Ubuntu 20.04.1 LTS \\n \\l\n\n"},
			DistributionInfo{"name": "ubuntu", "release": "20.04.1", "pretty_name": "Ubuntu 20.04.1 LTS"},
		},
		{
			"issue with release word",
			map[string]string{"/etc/issue": "CentOS release 6.5 (Final)\nKernel \\r on an \\m\n"},
			DistributionInfo{"name": "centos", "release": "6.5", "pretty_name": "CentOS release 6.5 (Final)"},
		},
		{
			"issue without version",
			map[string]string{"/etc/issue": "Arch Linux \\r (\\l)\n"},
			DistributionInfo{"name": "arch linux", "pretty_name": "Arch Linux"},
		},
		{
			"issue starting with an escape only line",
			map[string]string{"/etc/issue": "\\S\n\nFedora release 38 (Thirty Eight)\nKernel \\r on an \\m (\\l)\n"},
			DistributionInfo{"name": "fedora", "release": "38", "pretty_name": "Fedora release 38 (Thirty Eight)"},
		},
		{
			"issue with only escapes and the kernel banner",
			map[string]string{"/etc/issue": "\\S\nKernel \\r on an \\m (\\l)\n\n"},
			DistributionInfo{},
		},
		{
			"nothing to go on",
			map[string]string{},
			DistributionInfo{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t, linuxUname(), tt.files)
			assert.Equal(t, tt.want, h.LinuxDistribution())
		})
	}
}

func TestLinuxDistributionIssueName(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{"/etc/issue": "Ubuntu 20.04.1 LTS \\n \\l"})

	info := h.LinuxDistribution()
	assert.Regexp(t, `(?i)^ubuntu`, info.Name())
	assert.Equal(t, "20.04.1", info.Release())
}

// Existence, not a successful parse, decides which descriptor is used
func TestLinuxDistributionStopsAtUnparseableSource(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{
		"/etc/lsb-release": "this is not a KEY=value file at all\n",
		"/etc/os-release":  osRelease,
	})
	assert.Empty(t, h.LinuxDistribution())

	h, _ = newTestHost(t, linuxUname(), map[string]string{
		"/etc/fedora-release": "\n\n",
		"/etc/issue":          "Ubuntu 20.04.1 LTS",
	})
	assert.Empty(t, h.LinuxDistribution())
}

func TestLinuxMarkerFileWins(t *testing.T) {
	h, accessor := newTestHost(t, &Uname{Sysname: "unix"}, map[string]string{
		"/proc/sys/kernel/ostype": "Linux\n",
		"/etc/os-release":         osRelease,
	})

	assert.Equal(t, Linux, h.OS())
	assert.Equal(t, 0, accessor.calls, "the marker file is checked before uname")
	assert.Equal(t, "ubuntu", h.LinuxDistribution().Name())
}

func TestLinuxDistributionIsFresh(t *testing.T) {
	h, _ := newTestHost(t, linuxUname(), map[string]string{"/etc/os-release": osRelease})

	first := h.LinuxDistribution()
	first[DistName] = "tampered"
	assert.Equal(t, "ubuntu", h.LinuxDistribution().Name())
}

func TestDistributionSatisfies(t *testing.T) {
	info := DistributionInfo{"name": "ubuntu", "release": "20.04"}

	ok, err := info.Satisfies(">= 18.04")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = info.Satisfies("> 20.04, < 22.04")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = info.Satisfies("not a constraint")
	assert.Error(t, err)

	_, err = DistributionInfo{"name": "debian", "codename": "bullseye/sid"}.Satisfies(">= 10")
	assert.Error(t, err)

	_, err = DistributionInfo{"release": "bullseye"}.Satisfies(">= 10")
	assert.Error(t, err)
}

func TestLinuxDistributionFollowsLinksInsideRoot(t *testing.T) {
	outside := writeTree(t, map[string]string{"/etc/os-release": "ID=hostdistro\n"})
	hostFile := filepath.Join(outside, "etc", "os-release")

	tests := []struct {
		name   string
		target string
		want   DistributionInfo
	}{
		{"absolute link", "/usr/lib/os-release", DistributionInfo{"name": "imagedistro"}},
		{"relative link", "../usr/lib/os-release", DistributionInfo{"name": "imagedistro"}},
		{"relative link climbing above the root", "../../../../../../usr/lib/os-release", DistributionInfo{"name": "imagedistro"}},
		{"absolute link to a host file", hostFile, DistributionInfo{}},
		{"link to itself", "/etc/os-release", DistributionInfo{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, map[string]string{
				"/proc/sys/kernel/ostype": "Linux\n",
				"/usr/lib/os-release":     "ID=imagedistro\n",
			})
			require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0755))
			if err := os.Symlink(filepath.FromSlash(tt.target), filepath.Join(root, "etc", "os-release")); err != nil {
				t.Skipf("Symbolic links are not supported here: %v", err)
			}

			h := New(WithAccessor(&fakeAccessor{uname: linuxUname()}), WithRoot(root), WithEnv(osutils.MapEnv{}))
			assert.Equal(t, tt.want, h.LinuxDistribution())
		})
	}
}
