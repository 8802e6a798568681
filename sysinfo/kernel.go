package sysinfo

import (
	"runtime"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Kernel families.
const (
	KernelLinux   = "Linux"
	KernelBSD     = "BSD"
	KernelMacOS   = "MacOS"
	KernelWindows = "Windows"
)

// Kernel identifies the operating system family and kernel release.
type Kernel struct {
	inject.Static
	Name    string
	Release string
	Arch    string
}

// NewKernel detects the running kernel.
func NewKernel() (*Kernel, error) {
	name, err := KernelName(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	release, arch, err := kernelRelease()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "kernel release").WithSubject("kernel")
	}
	return &Kernel{Name: name, Release: release, Arch: arch}, nil
}

// KernelName maps a GOOS value to a kernel family. Operating systems outside
// the four supported families are rejected.
func KernelName(goos string) (string, error) {
	switch goos {
	case "linux", "android":
		return KernelLinux, nil
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return KernelBSD, nil
	case "darwin":
		return KernelMacOS, nil
	case "windows":
		return KernelWindows, nil
	}
	return "", errors.Newf(errors.ErrProbe, "unsupported operating system %q", goos).WithSubject("kernel")
}

// Publish writes the kernel table.
func (k *Kernel) Publish(r *inject.Registry) error {
	return r.PublishRecord("kernel",
		inject.F("name", inject.String(k.Name)),
		inject.F("version", inject.String(k.Release)),
		inject.F("architecture", inject.String(k.Arch)),
	)
}
