package sysinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Distro describes the operating system distribution. ShortName is a lower
// case identifier used to pick the built-in art.
type Distro struct {
	inject.Static
	Name      string
	ShortName string
	Version   string
}

// NewDistro detects the distribution of the running system.
func NewDistro(k *Kernel) (*Distro, error) {
	info, err := host.Info()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "host info").WithSubject("distro")
	}
	return distroFromHost(k, info), nil
}

func distroFromHost(k *Kernel, info *host.InfoStat) *Distro {
	version := strings.TrimSpace(info.PlatformVersion)
	platform := strings.TrimSpace(info.Platform)

	d := &Distro{Version: version}
	switch k.Name {
	case KernelMacOS:
		d.ShortName = "macos"
		d.Name = "macOS"
	case KernelWindows:
		// gopsutil reports the product name, e.g. "Microsoft Windows Server 2022 Datacenter".
		d.ShortName = "windows"
		if strings.Contains(strings.ToLower(platform), "server") {
			d.ShortName = "windows-server"
		}
		d.Name = strings.TrimPrefix(platform, "Microsoft ")
		version = ""
	default:
		d.ShortName = strings.ToLower(platform)
		if d.ShortName == "" {
			d.ShortName = strings.ToLower(k.Name)
		}
		d.Name = cases.Title(language.English).String(d.ShortName)
	}
	if d.Name == "" {
		d.Name = k.Name
	}
	if version != "" {
		d.Name += " " + version
	}
	return d
}

// Publish writes the distro table.
func (d *Distro) Publish(r *inject.Registry) error {
	return r.PublishRecord("distro",
		inject.F("name", inject.String(d.Name)),
		inject.F("shortname", inject.String(d.ShortName)),
		inject.F("version", inject.String(d.Version)),
	)
}
