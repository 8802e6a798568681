package sysinfo

import (
	"github.com/shirou/gopsutil/v4/mem"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Memory is the physical memory usage in bytes.
type Memory struct {
	inject.Static
	Max  uint64
	Used uint64
}

// NewMemory reads the current memory usage.
func NewMemory() (*Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "virtual memory").WithSubject("memory")
	}
	return &Memory{Max: vm.Total, Used: vm.Used}, nil
}

// Publish writes the memory table.
func (m *Memory) Publish(r *inject.Registry) error {
	return r.PublishRecord("memory",
		inject.F("max", inject.Int(int64(m.Max))),
		inject.F("used", inject.Int(int64(m.Used))),
	)
}
