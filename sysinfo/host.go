package sysinfo

import (
	"io/fs"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"freshfetch/inject"
	"freshfetch/logging"
)

// Firmware fills unset DMI fields with strings like these.
var dmiPlaceholders = []string{
	"to be filled by o.e.m.",
	"default string",
	"system product name",
	"system manufacturer",
	"not applicable",
	"none",
}

// Host is the machine model and, when running under one, the hypervisor.
type Host struct {
	inject.Static
	Model          string
	Virtualization string
}

// NewHost reads the machine model. A missing model is not an error: many
// virtual machines and single board computers do not report one.
func NewHost() *Host {
	h := &Host{Model: hostModel()}
	if info, err := host.Info(); err == nil && info.VirtualizationRole == "guest" {
		h.Virtualization = info.VirtualizationSystem
	}

	logger := logging.GetLogger("sysinfo")
	logger.Debug().Str("model", h.Model).Str("virtualization", h.Virtualization).Msg("Host detected")
	return h
}

// dmiModel joins the vendor and product name exported under
// sys/class/dmi/id, skipping firmware placeholders.
func dmiModel(fsys fs.FS) string {
	var parts []string
	for _, name := range []string{"sys_vendor", "product_name", "product_version"} {
		data, err := fs.ReadFile(fsys, "sys/class/dmi/id/"+name)
		if err != nil {
			continue
		}
		v := strings.TrimSpace(string(data))
		if v == "" || isPlaceholder(v) {
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}

func isPlaceholder(v string) bool {
	v = strings.ToLower(v)
	for _, p := range dmiPlaceholders {
		if v == p {
			return true
		}
	}
	return false
}

// Publish writes the host table.
func (h *Host) Publish(r *inject.Registry) error {
	return r.PublishRecord("host",
		inject.F("model", inject.String(h.Model)),
		inject.F("virtualization", inject.String(h.Virtualization)),
	)
}
