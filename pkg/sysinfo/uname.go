package sysinfo

// Uname holds the raw strings reported by the platform, equivalent to the fields of uname(2)
type Uname struct {
	Sysname  string `json:"sysname" yaml:"sysname"`
	Nodename string `json:"nodename" yaml:"nodename"`
	Release  string `json:"release" yaml:"release"`
	Version  string `json:"version" yaml:"version"`
	Machine  string `json:"machine" yaml:"machine"`
}

// Accessor provides raw platform information
type Accessor interface {
	Uname() (*Uname, error)
}

// PlatformAccessor is the Accessor for the platform the process runs on
type PlatformAccessor struct{}
