package sysinfo

import (
	"strings"

	"freshfetch/inject"
)

// GPU is the primary graphics adapter. Name is empty when it can not be
// determined.
type GPU struct {
	inject.Static
	Name string
}

// NewGPU looks up the primary graphics adapter.
func NewGPU() *GPU {
	return &GPU{Name: gpuName()}
}

// usableGPU filters out the fallback display drivers that stand in for a
// missing real driver.
func usableGPU(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name != "" && !strings.Contains(name, "microsoft basic")
}

// Publish writes the gpu table.
func (g *GPU) Publish(r *inject.Registry) error {
	return r.PublishRecord("gpu",
		inject.F("name", inject.String(g.Name)),
	)
}
