package facts

import (
	"time"

	"github.com/docker/go-units"

	"github.com/ActiveState/hostinfo/internal/logging"
	"github.com/ActiveState/hostinfo/internal/output"
	"github.com/ActiveState/hostinfo/internal/primer"
	"github.com/ActiveState/hostinfo/pkg/sysinfo"
)

type primeable interface {
	primer.Outputer
	primer.Querier
}

type Facts struct {
	out output.Outputer
	q   sysinfo.Querier
}

func New(prime primeable) *Facts {
	return &Facts{
		out: prime.Output(),
		q:   prime.Querier(),
	}
}

// Run prints every fact about the host
func (f *Facts) Run() error {
	facts := f.q.Collect()
	for fact, reason := range facts.Errors {
		logging.Debug("Could not gather %s: %s", fact, reason)
	}
	f.out.Print(&factsOutput{facts})
	return nil
}

type factsOutput struct {
	facts *sysinfo.Facts
}

// MarshalOutput renders sizes and durations for humans in plain output, the structured formats keep raw numbers
func (o *factsOutput) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return o.facts
	}
	return humanize(o.facts)
}

type plainMemory struct {
	Total     string `json:"total"`
	Available string `json:"available"`
	Used      string `json:"used"`
	Swap      string `json:"swap,omitempty"`
}

type plainProcess struct {
	Resident string `json:"resident"`
	Virtual  string `json:"virtual"`
}

type plainFacts struct {
	OS           sysinfo.OSFamily         `json:"os"`
	Ancestors    []sysinfo.OSFamily       `json:"os_ancestors,omitempty"`
	Uname        *sysinfo.Uname           `json:"uname,omitempty"`
	Architecture sysinfo.ArchInfo         `json:"architecture"`
	Distribution sysinfo.DistributionInfo `json:"distribution,omitempty"`
	MacOS        *sysinfo.MacOSVersion    `json:"macos,omitempty"`
	Hostname     string                   `json:"hostname,omitempty"`
	User         string                   `json:"user,omitempty"`
	CPU          *sysinfo.CPUInfo         `json:"cpu,omitempty"`
	Memory       *plainMemory             `json:"memory,omitempty"`
	Process      *plainProcess            `json:"process_memory,omitempty"`
	Uptime       string                   `json:"uptime,omitempty"`
	Runtime      *sysinfo.RuntimeInfo     `json:"runtime,omitempty"`
	Errors       map[string]string        `json:"errors,omitempty"`
}

func humanize(f *sysinfo.Facts) *plainFacts {
	p := &plainFacts{
		OS:           f.OS,
		Ancestors:    f.Ancestors,
		Uname:        f.Uname,
		Architecture: f.Architecture,
		Distribution: f.Distribution,
		MacOS:        f.MacOS,
		Hostname:     f.Hostname,
		User:         f.User,
		CPU:          f.CPU,
		Runtime:      f.Runtime,
		Errors:       f.Errors,
	}

	if f.Memory != nil {
		p.Memory = &plainMemory{
			Total:     units.BytesSize(float64(f.Memory.Total)),
			Available: units.BytesSize(float64(f.Memory.Available)),
			Used:      units.BytesSize(float64(f.Memory.Used)),
		}
		if f.Memory.SwapTotal > 0 {
			p.Memory.Swap = units.BytesSize(float64(f.Memory.SwapFree)) + " free of " +
				units.BytesSize(float64(f.Memory.SwapTotal))
		}
	}
	if f.Process != nil {
		p.Process = &plainProcess{
			Resident: units.BytesSize(float64(f.Process.Resident)),
			Virtual:  units.BytesSize(float64(f.Process.Virtual)),
		}
	}
	if f.Uptime > 0 {
		p.Uptime = units.HumanDuration(time.Duration(f.Uptime) * time.Second)
	}

	return p
}
