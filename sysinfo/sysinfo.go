// Package sysinfo gathers facts about the running machine. Each fact is an
// immutable snapshot taken once per run and published into the Lua context
// as one table named after the fact (kernel, context, distro, uptime, shell,
// host, packages, resolution, cpu, gpu, memory, terminal).
package sysinfo

import (
	"io/fs"
	"os"

	"freshfetch/inject"
	"freshfetch/logging"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// LookupEnv reads an environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// Options tunes how facts are gathered. Zero values fall back to the real
// environment and process runner.
type Options struct {
	Env LookupEnv

	Runner Runner

	// Root is where package databases are looked up. Nil means "/".
	Root fs.FS

	// ShellVersions maps a shell name to the command that prints its
	// version. Nil means DefaultShellVersions.
	ShellVersions map[string][]string
}

// Facts holds every fact gathered for one run.
type Facts struct {
	Kernel     *Kernel
	Context    *Context
	Distro     *Distro
	Host       *Host
	Uptime     *Uptime
	Packages   *Packages
	Shell      *Shell
	Resolution *Resolution
	CPU        *CPU
	GPU        *GPU
	Memory     *Memory
}

// Gather probes the machine. The kernel is detected first because the other
// probes branch on the kernel family.
func Gather(opts Options) (*Facts, error) {
	logger := logging.GetLogger("sysinfo")
	done := logging.LogOperationStart(logger, "gather")
	defer done()

	if opts.Env == nil {
		opts.Env = os.LookupEnv
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Root == nil {
		opts.Root = os.DirFS("/")
	}
	if opts.ShellVersions == nil {
		opts.ShellVersions = DefaultShellVersions()
	}

	kernel, err := NewKernel()
	if err != nil {
		return nil, err
	}
	context, err := NewContext(opts.Env)
	if err != nil {
		return nil, err
	}
	distro, err := NewDistro(kernel)
	if err != nil {
		return nil, err
	}
	uptime, err := NewUptime()
	if err != nil {
		return nil, err
	}
	shell, err := NewShell(kernel, opts.Env, opts.Runner, opts.ShellVersions)
	if err != nil {
		return nil, err
	}
	cpu, err := NewCPU()
	if err != nil {
		return nil, err
	}
	memory, err := NewMemory()
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("kernel", kernel.Name).
		Str("distro", distro.ShortName).
		Str("shell", shell.Name).
		Msg("Facts gathered")

	return &Facts{
		Kernel:     kernel,
		Context:    context,
		Distro:     distro,
		Host:       NewHost(),
		Uptime:     uptime,
		Packages:   NewPackages(opts.Root),
		Shell:      shell,
		Resolution: NewResolution(),
		CPU:        cpu,
		GPU:        NewGPU(),
		Memory:     memory,
	}, nil
}

// Providers lists the facts in publish order.
func (f *Facts) Providers() []inject.Injectable {
	return []inject.Injectable{
		f.Context,
		f.Kernel,
		f.Distro,
		f.Host,
		f.Uptime,
		f.Packages,
		f.Shell,
		f.Resolution,
		f.CPU,
		f.GPU,
		f.Memory,
	}
}
