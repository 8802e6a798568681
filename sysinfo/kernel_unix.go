//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

func kernelRelease() (string, string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	release, arch := unameFields(&uts)
	return release, arch, nil
}

// unameFields returns the release and machine hardware name, as uname -r
// and uname -m print them.
func unameFields(uts *unix.Utsname) (release, arch string) {
	return unix.ByteSliceToString(uts.Release[:]), unix.ByteSliceToString(uts.Machine[:])
}
