package render

import (
	"fmt"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshfetch/errors"
	"freshfetch/inject"
)

// countingFS wraps a MapFS and records every ReadFile call.
type countingFS struct {
	files   fstest.MapFS
	readErr error
	reads   []string
}

func (c *countingFS) Stat(name string) (fs.FileInfo, error) {
	return c.files.Stat(name)
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads = append(c.reads, name)
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.files.ReadFile(name)
}

func newFS(files map[string]string) *countingFS {
	m := fstest.MapFS{}
	for name, data := range files {
		m[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return &countingFS{files: m}
}

func infoDoc(defaultSource string) Document {
	return Document{Name: "info", UserPath: "freshfetch/info.lua", Default: defaultSource}
}

func TestRenderUsesDefaultWithoutReading(t *testing.T) {
	fsys := newFS(nil)
	r := New(WithFS(fsys))

	out, err := r.Render(infoDoc(`__freshfetch__ = "hello"`), inject.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Empty(t, fsys.reads, "no override means no read")
}

func TestRenderPrefersUserOverride(t *testing.T) {
	fsys := newFS(map[string]string{"freshfetch/info.lua": `__freshfetch__ = "custom"`})
	r := New(WithFS(fsys))

	src, err := r.Resolve(infoDoc(`__freshfetch__ = "default"`))
	require.NoError(t, err)
	assert.Equal(t, OriginUser, src.Origin)
	assert.Equal(t, "freshfetch/info.lua", src.Path)

	out, err := r.Render(infoDoc(`__freshfetch__ = "default"`), inject.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, "custom", out)
}

func TestRenderOutputMissing(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"never set", `local x = 1`},
		{"number", `__freshfetch__ = 42`},
		{"table", `__freshfetch__ = {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newFS(map[string]string{"freshfetch/info.lua": tt.script})
			out, err := New(WithFS(fsys)).Render(infoDoc(`__freshfetch__ = "default"`), inject.NewRegistry())
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.IsErrorCode(err, errors.ErrScriptOutput), "got %v", err)
		})
	}
}

func TestRenderScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"syntax", `__freshfetch__ = "unterminated`, "freshfetch/info.lua"},
		{"runtime", `__freshfetch__ = nothing.field`, "field"},
		{"explicit error", `error("boom")`, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newFS(map[string]string{"freshfetch/info.lua": tt.script})
			_, err := New(WithFS(fsys)).Render(infoDoc(""), inject.NewRegistry())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrScript), "got %v", err)
			assert.Contains(t, errors.Describe(err), tt.want)
		})
	}
}

func TestRenderReadErrors(t *testing.T) {
	t.Run("read failure names the path", func(t *testing.T) {
		fsys := newFS(map[string]string{"freshfetch/info.lua": ""})
		fsys.readErr = fmt.Errorf("permission denied")

		_, err := New(WithFS(fsys)).Render(infoDoc(`__freshfetch__ = ""`), inject.NewRegistry())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRead))
		assert.Contains(t, errors.Describe(err), `"freshfetch/info.lua"`)
		assert.Contains(t, errors.Describe(err), "permission denied")
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		fsys := newFS(map[string]string{"freshfetch/info.lua": "\xff\xfe"})
		_, err := New(WithFS(fsys)).Render(infoDoc(`__freshfetch__ = ""`), inject.NewRegistry())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRead))
	})
}

func TestRegistryHandoff(t *testing.T) {
	reg := inject.NewRegistry()
	require.NoError(t, reg.PublishRecord("memory",
		inject.F("max", inject.Int(16777216)),
		inject.F("used", inject.Int(8388608)),
	))
	require.NoError(t, reg.PublishRecord("cpu",
		inject.F("name", inject.String("Ryzen")),
		inject.F("freq", inject.Record{inject.F("mhz", inject.Int(3600))}),
	))
	require.NoError(t, reg.Set("info", inject.String("panel")))

	script := `
__freshfetch__ = tostring(memory.max == 16777216 and memory.used == 8388608)
  .. " " .. cpu.name .. " " .. cpu.freq.mhz .. " " .. info`

	out, err := New(WithFS(newFS(nil))).Execute(Source{Name: "test", Code: script}, reg)
	require.NoError(t, err)
	assert.Equal(t, "true Ryzen 3600 panel", out)
}

func TestPrintAppendsToOutput(t *testing.T) {
	out, err := New(WithFS(newFS(nil))).Execute(Source{Name: "test", Code: `print("a", 1) print("b")`}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a\t1\nb\n", out)
}

func TestEachExecutionStartsFresh(t *testing.T) {
	r := New(WithFS(newFS(nil)))
	_, err := r.Execute(Source{Name: "first", Code: `leftover = "x" __freshfetch__ = ""`}, nil)
	require.NoError(t, err)

	out, err := r.Execute(Source{Name: "second", Code: `__freshfetch__ = tostring(leftover)`}, nil)
	require.NoError(t, err)
	assert.Equal(t, "nil", out)

	_, err = r.Execute(Source{Name: "third", Code: `local x = 1`}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptOutput), "output must not leak between runs")
}

func TestSandboxedLibraries(t *testing.T) {
	out, err := New(WithFS(newFS(nil))).Execute(Source{Name: "test", Code: `
__freshfetch__ = tostring(io) .. " " .. tostring(debug) .. " " .. type(os.date) .. " " .. type(string.rep)`}, nil)
	require.NoError(t, err)
	assert.Equal(t, "nil nil function function", out)
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"ansi names", `__freshfetch__ = ansi.red .. ansi.reset`, "\x1b[31m\x1b[0m"},
		{"ansi bold", `__freshfetch__ = ansi.bold`, "\x1b[1m"},
		{"ansi fg 256", `__freshfetch__ = ansi.fg(200)`, "\x1b[38;5;200m"},
		{"ansi bg bright", `__freshfetch__ = ansi.bg(9)`, "\x1b[101m"},
		{"strip", `__freshfetch__ = strip("\27[31mred\27[0m")`, "red"},
		{"measure", `local w, h = measure("ab\n\27[31mcde\27[0m\nf") __freshfetch__ = w .. "x" .. h`, "3x3"},
		{"cells", `__freshfetch__ = tostring(cells("日本"))`, "4"},
		{"pad", `__freshfetch__ = pad("Hi", 5) .. "|"`, "Hi   |"},
		{"truncate", `__freshfetch__ = truncate("Hello World", 8)`, "Hello..."},
		{"bytes", `__freshfetch__ = bytes(16777216)`, "16.0 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(WithFS(newFS(nil))).Execute(Source{Name: tt.name, Code: tt.script}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHelperArgumentErrors(t *testing.T) {
	for _, script := range []string{`ansi.fg(256)`, `bytes(-1)`, `pad()`} {
		_, err := New(WithFS(newFS(nil))).Execute(Source{Name: "test", Code: script}, nil)
		require.Error(t, err, script)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScript), script)
	}
}
