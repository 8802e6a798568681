package sysinfo

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"freshfetch/errors"
	"freshfetch/inject"
	"freshfetch/logging"
)

// Shell is the user's login shell and, when a version command is known for
// it, its version.
type Shell struct {
	inject.Static
	Name    string
	Version string
}

// DefaultShellVersions returns the built-in version commands, keyed by
// shell name. Shells without an entry get an empty version.
func DefaultShellVersions() map[string][]string {
	return map[string][]string{
		"zsh":        {"zsh", "-c", "printf $ZSH_VERSION"},
		"bash":       {"bash", "-c", "printf $BASH_VERSION"},
		"fish":       {"fish", "-c", "printf $version"},
		"pwsh":       {"pwsh", "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()"},
		"powershell": {"powershell", "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()"},
	}
}

// NewShell identifies the shell from $SHELL. On Linux, BSD and macOS the
// variable is mandatory; Windows falls back to %ComSpec%.
func NewShell(k *Kernel, env LookupEnv, runner Runner, versions map[string][]string) (*Shell, error) {
	path, ok := env("SHELL")
	if !ok || path == "" {
		if k.Name != KernelWindows {
			return nil, errors.New(errors.ErrEnv, "environment variable not present").WithSubject("SHELL")
		}
		if path, ok = env("ComSpec"); !ok || path == "" {
			path = "cmd.exe"
		}
	}

	name := shellName(path)
	if name == "" {
		return nil, errors.Newf(errors.ErrEnv, "%q does not name a shell", path).WithSubject("SHELL")
	}

	version, err := shellVersion(runner, versions[name])
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("sysinfo")
	logger.Debug().Str("shell", name).Str("version", version).Msg("Shell detected")

	return &Shell{Name: name, Version: version}, nil
}

func shellName(path string) string {
	// $SHELL may hold a Windows path even when read on another platform.
	path = strings.ReplaceAll(path, `\`, "/")
	name := filepath.Base(path)
	if name == "." || name == "/" {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}

func shellVersion(runner Runner, command []string) (string, error) {
	if len(command) == 0 {
		return "", nil
	}

	out, err := runner.Output(command[0], command[1:]...)
	subject := strings.Join(command, " ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCommand, "run version command").WithSubject(subject)
	}
	if !utf8.Valid(out) {
		return "", errors.New(errors.ErrCommand, "output contained invalid UTF-8").WithSubject(subject)
	}
	return strings.TrimSpace(string(out)), nil
}

// Publish writes the shell table.
func (s *Shell) Publish(r *inject.Registry) error {
	return r.PublishRecord("shell",
		inject.F("name", inject.String(s.Name)),
		inject.F("version", inject.String(s.Version)),
	)
}
