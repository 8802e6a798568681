package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"freshfetch/errors"
	"freshfetch/inject"
)

// CPU describes the first processor package.
type CPU struct {
	inject.Static
	Name    string
	Cores   int64
	Threads int64
	MHz     int64
}

// NewCPU reads the processor model and core counts.
func NewCPU() (*CPU, error) {
	infos, err := cpu.Info()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "cpu info").WithSubject("cpu")
	}
	cores, err := cpu.Counts(false)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "physical core count").WithSubject("cpu")
	}
	threads, err := cpu.Counts(true)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "logical core count").WithSubject("cpu")
	}

	c := &CPU{Cores: int64(cores), Threads: int64(threads)}
	if len(infos) > 0 {
		c.Name = strings.Join(strings.Fields(infos[0].ModelName), " ")
		c.MHz = int64(infos[0].Mhz)
	}
	return c, nil
}

// Publish writes the cpu table.
func (c *CPU) Publish(r *inject.Registry) error {
	return r.PublishRecord("cpu",
		inject.F("name", inject.String(c.Name)),
		inject.F("cores", inject.Int(c.Cores)),
		inject.F("threads", inject.Int(c.Threads)),
		inject.F("freq", inject.Int(c.MHz)),
	)
}
