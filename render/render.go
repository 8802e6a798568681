// Package render turns a named document into text: it resolves the template
// source (user override, else built-in default), runs it in a fresh Lua
// state loaded with the globals of an inject.Registry and reads back the
// __freshfetch__ variable.
package render

import (
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"freshfetch/assets"
	"freshfetch/errors"
	"freshfetch/inject"
	"freshfetch/logging"
)

// OutputVar is the global every template must set to its rendered text.
const OutputVar = "__freshfetch__"

// Document is a logical template: a name, an optional override file and
// the built-in source used when the override does not exist.
type Document struct {
	Name     string
	UserPath string
	Default  string
}

// Origin tells where a Source came from.
type Origin string

const (
	OriginUser    Origin = "user"
	OriginDefault Origin = "default"
)

// Source is resolved template code.
type Source struct {
	Name   string
	Path   string
	Origin Origin
	Code   string
}

// chunkName is what the interpreter reports in diagnostics.
func (s Source) chunkName() string {
	if s.Path != "" {
		return s.Path
	}
	return s.Name
}

// FS is the part of the filesystem the renderer touches.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFS reads from the real filesystem.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (OSFS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

// Renderer runs templates. It holds no Lua state between calls.
type Renderer struct {
	fs     FS
	logger zerolog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFS replaces the filesystem used to resolve override files.
func WithFS(fsys FS) Option {
	return func(r *Renderer) { r.fs = fsys }
}

// New creates a Renderer backed by the real filesystem.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		fs:     OSFS{},
		logger: logging.GetLogger("render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves and executes doc against the globals in reg.
func (r *Renderer) Render(doc Document, reg *inject.Registry) (string, error) {
	src, err := r.Resolve(doc)
	if err != nil {
		return "", err
	}
	return r.Execute(src, reg)
}

// Resolve picks the override file when it exists and the default source
// otherwise. The override is only read after a successful existence check.
func (r *Renderer) Resolve(doc Document) (Source, error) {
	if doc.UserPath != "" {
		if _, err := r.fs.Stat(doc.UserPath); err == nil {
			data, err := r.fs.ReadFile(doc.UserPath)
			if err != nil {
				return Source{}, errors.Wrap(err, errors.ErrRead, "read template").WithSubject(doc.UserPath)
			}
			if !utf8.Valid(data) {
				return Source{}, errors.New(errors.ErrRead, "stream did not contain valid UTF-8").WithSubject(doc.UserPath)
			}
			r.logger.Debug().Str("document", doc.Name).Str("path", doc.UserPath).Msg("Using user template")
			return Source{Name: doc.Name, Path: doc.UserPath, Origin: OriginUser, Code: string(data)}, nil
		}
	}

	r.logger.Debug().Str("document", doc.Name).Msg("Using default template")
	return Source{Name: doc.Name, Origin: OriginDefault, Code: doc.Default}, nil
}

// Execute runs src in a new Lua state. The prelude runs first, then every
// global of reg is set, then the template itself. The output variable is
// read exactly once.
func (r *Renderer) Execute(src Source, reg *inject.Registry) (string, error) {
	done := logging.LogOperationStart(r.logger, "render "+src.Name)
	defer done()

	L := newState()
	defer L.Close()

	if err := openLibs(L); err != nil {
		return "", errors.Wrap(err, errors.ErrScript, "open libraries").WithSubject(src.Name)
	}
	installHelpers(L)
	if err := run(L, assets.Print, "print"); err != nil {
		return "", errors.Wrap(err, errors.ErrScript, "run prelude").WithSubject("print")
	}
	if err := handoff(L, reg); err != nil {
		return "", err
	}
	if err := run(L, src.Code, src.chunkName()); err != nil {
		return "", errors.Wrap(err, errors.ErrScript, "run template").WithSubject(src.Name)
	}

	out := L.GetGlobal(OutputVar)
	s, ok := out.(lua.LString)
	if !ok {
		return "", errors.Newf(errors.ErrScriptOutput, "%s is %s, expected a string", OutputVar, out.Type()).WithSubject(src.Name)
	}
	return string(s), nil
}

func run(L *lua.LState, code, name string) error {
	fn, err := L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}
