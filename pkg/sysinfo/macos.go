package sysinfo

import (
	"errors"

	"howett.net/plist"

	"github.com/ActiveState/hostinfo/internal/constants"
	"github.com/ActiveState/hostinfo/internal/errs"
)

// ErrNotDarwin is returned by MacOSVersion on hosts that aren't running Darwin
var ErrNotDarwin = errors.New("host is not running Darwin")

// MacOSVersion represents the product description found in SystemVersion.plist
type MacOSVersion struct {
	ProductName         string `plist:"ProductName" json:"product_name" yaml:"product_name"`
	ProductVersion      string `plist:"ProductVersion" json:"product_version" yaml:"product_version"`
	ProductBuildVersion string `plist:"ProductBuildVersion" json:"product_build_version" yaml:"product_build_version"`
}

// MacOSVersion returns the macOS product name and version
func (h *Host) MacOSVersion() (*MacOSVersion, error) {
	if !IsOS(h.OS(), Darwin) {
		return nil, ErrNotDarwin
	}

	b, err := h.files.ReadFile(constants.MacOSVersionFile)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read macOS version")
	}
	return parseMacOSVersion(b)
}

func parseMacOSVersion(b []byte) (*MacOSVersion, error) {
	v := &MacOSVersion{}
	if _, err := plist.Unmarshal(b, v); err != nil {
		return nil, errs.Wrap(err, "Could not parse %s", constants.MacOSVersionFile)
	}
	if v.ProductVersion == "" {
		return nil, &ParseError{constants.MacOSVersionFile, "ProductVersion is missing"}
	}
	return v, nil
}
