//go:build !unix && !windows

package sysinfo

import "runtime"

func kernelRelease() (string, string, error) {
	return "", runtime.GOARCH, nil
}
