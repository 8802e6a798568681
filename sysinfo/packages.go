package sysinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"freshfetch/inject"
)

// PackageCount is the number of packages one package manager has installed.
type PackageCount struct {
	Manager string
	Count   int64
}

// Packages lists the package managers found on the system with their
// installed package counts.
type Packages struct {
	inject.Static
	Managers []PackageCount
}

type packageCounter struct {
	manager string
	count   func(fsys fs.FS) (int64, bool)
}

// Counters read the package databases directly; none of them spawns the
// package manager itself.
var packageCounters = []packageCounter{
	{"dpkg", countDpkg},
	{"pacman", countDirs("var/lib/pacman/local")},
	{"apk", countLinesWithPrefix("lib/apk/db/installed", "P:")},
	{"pkg", countDirs("var/db/pkg")},
	{"flatpak", countDirs("var/lib/flatpak/app")},
	{"brew", countDirs("opt/homebrew/Cellar")},
}

// NewPackages counts installed packages below root.
func NewPackages(root fs.FS) *Packages {
	p := countPackages(root)
	if n, ok := installedPrograms(); ok {
		p.Managers = append(p.Managers, PackageCount{Manager: "programs", Count: n})
	}
	return p
}

func countPackages(root fs.FS) *Packages {
	p := &Packages{}
	for _, c := range packageCounters {
		if n, ok := c.count(root); ok && n > 0 {
			p.Managers = append(p.Managers, PackageCount{Manager: c.manager, Count: n})
		}
	}
	return p
}

// Total is the sum over all managers.
func (p *Packages) Total() int64 {
	var total int64
	for _, m := range p.Managers {
		total += m.Count
	}
	return total
}

// Summary renders the counts as "1234 (dpkg), 12 (flatpak)".
func (p *Packages) Summary() string {
	parts := make([]string, 0, len(p.Managers))
	for _, m := range p.Managers {
		parts = append(parts, fmt.Sprintf("%d (%s)", m.Count, m.Manager))
	}
	return strings.Join(parts, ", ")
}

func countDpkg(fsys fs.FS) (int64, bool) {
	data, err := fs.ReadFile(fsys, "var/lib/dpkg/status")
	if err != nil {
		return 0, false
	}
	var n int64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if scanner.Text() == "Status: install ok installed" {
			n++
		}
	}
	return n, true
}

func countDirs(dir string) func(fs.FS) (int64, bool) {
	return func(fsys fs.FS) (int64, bool) {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return 0, false
		}
		var n int64
		for _, e := range entries {
			if e.IsDir() {
				n++
			}
		}
		return n, true
	}
}

func countLinesWithPrefix(file, prefix string) func(fs.FS) (int64, bool) {
	return func(fsys fs.FS) (int64, bool) {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return 0, false
		}
		var n int64
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if strings.HasPrefix(scanner.Text(), prefix) {
				n++
			}
		}
		return n, true
	}
}

// Publish writes the packages table: the total, the per-manager counts and
// a ready-made summary line.
func (p *Packages) Publish(r *inject.Registry) error {
	managers := make(inject.Record, 0, len(p.Managers))
	for _, m := range p.Managers {
		managers = append(managers, inject.F(m.Manager, inject.Int(m.Count)))
	}
	return r.PublishRecord("packages",
		inject.F("count", inject.Int(p.Total())),
		inject.F("managers", managers),
		inject.F("summary", inject.String(p.Summary())),
	)
}
