package sysinfo

import "os/exec"

// Runner runs an external command and returns its standard output.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. It sets no timeout: a hanging
// command blocks the run.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(name string, args ...string) ([]byte, error) {
	c := exec.Command(name, args...)
	hideWindow(c)
	return c.Output()
}
