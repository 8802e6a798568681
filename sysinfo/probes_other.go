//go:build !windows

package sysinfo

import "os"

func hostModel() string {
	return dmiModel(os.DirFS("/"))
}

// TODO: query the display server (XRandR, Wayland output, CoreGraphics) for
// the GPU name and screen resolution.
func gpuName() string { return "" }

func screenResolution() (int64, int64) { return 0, 0 }

func installedPrograms() (int64, bool) { return 0, false }
