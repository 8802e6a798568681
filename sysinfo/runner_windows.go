//go:build windows

package sysinfo

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps console shells such as powershell from flashing a window
// while their version is queried.
func hideWindow(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
