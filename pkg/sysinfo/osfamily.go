package sysinfo

import (
	"strings"
)

// OSFamily is a bit mask identifying an operating system family. Every family carries the bits of each family it
// derives from, so "is-a" checks are a single mask test (see IsOS).
type OSFamily uint16

const (
	// Unknown is returned when the OS could not be identified. It matches nothing but itself.
	Unknown OSFamily = 0
	// Unix is the base of every Unix-like family.
	Unix OSFamily = 1 << 0
	// Windows shares no bits with Unix.
	Windows OSFamily = 1 << 1

	Linux   = Unix | 1<<2
	Darwin  = Unix | 1<<3
	FreeBSD = Unix | 1<<4
	HPUX    = Unix | 1<<5
	AIX     = Unix | 1<<6
	Solaris = Unix | 1<<7
)

// families lists every known family, most general first
var families = []OSFamily{Unix, Windows, Linux, Darwin, FreeBSD, HPUX, AIX, Solaris}

var familyNames = map[OSFamily]string{
	Unknown: "Unknown",
	Unix:    "Unix",
	Windows: "Windows",
	Linux:   "Linux",
	Darwin:  "Darwin",
	FreeBSD: "FreeBSD",
	HPUX:    "HP-UX",
	AIX:     "AIX",
	Solaris: "Solaris",
}

// kernelNames maps lowercased kernel names (as reported by uname) onto families
var kernelNames = map[string]OSFamily{
	"linux":   Linux,
	"freebsd": FreeBSD,
	"sunos":   Solaris,
	"solaris": Solaris,
	"darwin":  Darwin,
	"hp-ux":   HPUX,
	"aix":     AIX,
	"unix":    Unix,
}

// windowsPrefixes covers "win32", "windows" and the various "cygwin_nt-x.y" kernel names
var windowsPrefixes = []string{"win", "cygwin"}

func (f OSFamily) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return familyNames[Unknown]
}

// MarshalText renders the family by name, so it reads well in JSON and YAML
func (f OSFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Ancestors returns every family f is-a, excluding itself, most general first
func (f OSFamily) Ancestors() []OSFamily {
	result := []OSFamily{}
	for _, candidate := range families {
		if candidate != f && IsOS(f, candidate) {
			result = append(result, candidate)
		}
	}
	return result
}

// Classify maps a kernel name onto its OS family. Unrecognized names map to Unknown.
func Classify(kernelName string) OSFamily {
	kernelName = strings.ToLower(strings.TrimSpace(kernelName))
	if family, ok := kernelNames[kernelName]; ok {
		return family
	}
	for _, prefix := range windowsPrefixes {
		if strings.HasPrefix(kernelName, prefix) {
			return Windows
		}
	}
	return Unknown
}

// IsOS returns whether current is-a any of the given candidates (either the candidate itself or a derivative of it).
// It returns false when no candidates are given.
func IsOS(current OSFamily, candidates ...OSFamily) bool {
	for _, candidate := range candidates {
		if candidate == Unknown {
			if current == Unknown {
				return true
			}
			continue
		}
		if current&candidate == candidate {
			return true
		}
	}
	return false
}

// ParseOSFamily resolves a family by its name (as returned by String) or a common alias, case insensitive
func ParseOSFamily(name string) (OSFamily, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for family, familyName := range familyNames {
		if strings.ToLower(familyName) == name {
			return family, true
		}
	}
	switch name {
	case "macos", "mac", "osx":
		return Darwin, true
	case "sunos":
		return Solaris, true
	case "hpux":
		return HPUX, true
	}
	return Unknown, false
}
