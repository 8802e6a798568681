package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshfetch/ascii"
	"freshfetch/sysinfo"
)

func fakeGather(opts sysinfo.Options) (*sysinfo.Facts, error) {
	return &sysinfo.Facts{
		Kernel:     &sysinfo.Kernel{Name: sysinfo.KernelLinux, Release: "6.8.0", Arch: "x86_64"},
		Context:    &sysinfo.Context{User: "alice", Host: "wonderland"},
		Distro:     &sysinfo.Distro{Name: "Debian", ShortName: "debian", Version: "12"},
		Host:       &sysinfo.Host{},
		Uptime:     &sysinfo.Uptime{Minutes: 5},
		Packages:   &sysinfo.Packages{},
		Shell:      &sysinfo.Shell{Name: "bash", Version: "5.2"},
		Resolution: &sysinfo.Resolution{},
		CPU:        &sysinfo.CPU{Name: "Ryzen 7", Cores: 8, Threads: 16},
		GPU:        &sysinfo.GPU{},
		Memory:     &sysinfo.Memory{Max: 16777216, Used: 8388608},
	}, nil
}

func configDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	return dir
}

func TestExecuteRendersLayout(t *testing.T) {
	dir := configDir(t, map[string]string{"layout.lua": `__freshfetch__ = "hello"`})

	var out bytes.Buffer
	cmd := newRootCmd(&out, fakeGather)
	cmd.SetArgs([]string{"--config-dir", dir})

	assert.Equal(t, 0, execute(cmd, &out))
	assert.Equal(t, "hello", out.String())
}

func TestExecuteReportsErrors(t *testing.T) {
	t.Run("template failure", func(t *testing.T) {
		dir := configDir(t, map[string]string{"layout.lua": `error("boom")`})

		var out bytes.Buffer
		cmd := newRootCmd(&out, fakeGather)
		cmd.SetArgs([]string{"--config-dir", dir})

		assert.Equal(t, 1, execute(cmd, &out))
		assert.Contains(t, out.String(), "Error.")
		assert.Contains(t, out.String(), `A Lua error occurred in "layout"`)
		assert.Contains(t, out.String(), "boom")
	})

	t.Run("gather failure", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd(&out, func(sysinfo.Options) (*sysinfo.Facts, error) {
			_, err := sysinfo.NewShell(&sysinfo.Kernel{Name: sysinfo.KernelLinux},
				func(string) (string, bool) { return "", false }, nil, nil)
			return nil, err
		})
		cmd.SetArgs([]string{"--config-dir", t.TempDir()})

		assert.Equal(t, 1, execute(cmd, &out))
		assert.Contains(t, out.String(), "Failed to get $SHELL")
	})
}

func TestListLogos(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out, fakeGather)
	cmd.SetArgs([]string{"--list-logos"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, strings.Join(ascii.Names(), "\n")+"\n", out.String())
}

func TestFlagOverrides(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, fakeGather)
	require.NoError(t, cmd.ParseFlags([]string{"-vv", "--logo", "arch"}))

	got := flagOverrides(cmd)
	assert.Equal(t, map[string]interface{}{"verbosity": 2, "logo": "arch"}, got)
	assert.NotContains(t, got, "config_dir", "unset flags must not override config")
}

func TestRejectsArguments(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out, fakeGather)
	cmd.SetArgs([]string{"extra"})
	assert.Equal(t, 1, execute(cmd, &out))
}
