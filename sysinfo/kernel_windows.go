//go:build windows

package sysinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

// kernelRelease asks ntdll.RtlGetVersion, which is not subject to the
// compatibility shims that make GetVersionEx lie about the build.
func kernelRelease() (string, string, error) {
	v := windows.RtlGetVersion()
	if v == nil {
		return "", "", fmt.Errorf("RtlGetVersion returned no data")
	}
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber), runtime.GOARCH, nil
}
