package render

import (
	"strconv"

	"github.com/muesli/termenv"
	lua "github.com/yuin/gopher-lua"

	"freshfetch/metrics"
	"freshfetch/sysinfo"
)

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func installHelpers(L *lua.LState) {
	L.SetGlobal("strip", L.NewFunction(luaStrip))
	L.SetGlobal("measure", L.NewFunction(luaMeasure))
	L.SetGlobal("cells", L.NewFunction(luaCells))
	L.SetGlobal("pad", L.NewFunction(luaPad))
	L.SetGlobal("truncate", L.NewFunction(luaTruncate))
	L.SetGlobal("bytes", L.NewFunction(luaBytes))
	L.SetGlobal("ansi", ansiTable(L))
}

func luaStrip(L *lua.LState) int {
	L.Push(lua.LString(metrics.Strip(L.CheckString(1))))
	return 1
}

// measure(s) returns width, height.
func luaMeasure(L *lua.LState) int {
	d := metrics.Measure(L.CheckString(1))
	L.Push(lua.LNumber(d.Width))
	L.Push(lua.LNumber(d.Height))
	return 2
}

func luaCells(L *lua.LState) int {
	L.Push(lua.LNumber(metrics.Cells(L.CheckString(1))))
	return 1
}

func luaPad(L *lua.LState) int {
	L.Push(lua.LString(metrics.Pad(L.CheckString(1), L.CheckInt(2))))
	return 1
}

func luaTruncate(L *lua.LState) int {
	L.Push(lua.LString(sysinfo.TruncateString(L.CheckString(1), L.CheckInt(2))))
	return 1
}

func luaBytes(L *lua.LState) int {
	n := L.CheckInt64(1)
	if n < 0 {
		L.ArgError(1, "byte count must not be negative")
	}
	L.Push(lua.LString(sysinfo.FormatBytes(uint64(n))))
	return 1
}

func sequence(seq string) lua.LString {
	return lua.LString(termenv.CSI + seq + "m")
}

func colorSequence(n int, bg bool) lua.LString {
	return sequence(termenv.ANSI256.Color(strconv.Itoa(n)).Sequence(bg))
}

// ansiTable builds the `ansi` global: style sequences, the eight basic
// foreground colours by name, and fg(n)/bg(n) for the 256-colour palette.
func ansiTable(L *lua.LState) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("reset", sequence(termenv.ResetSeq))
	t.RawSetString("bold", sequence(termenv.BoldSeq))
	t.RawSetString("faint", sequence(termenv.FaintSeq))
	t.RawSetString("italic", sequence(termenv.ItalicSeq))
	t.RawSetString("underline", sequence(termenv.UnderlineSeq))
	for i, name := range colorNames {
		t.RawSetString(name, colorSequence(i, false))
	}
	t.RawSetString("fg", L.NewFunction(colorFunc(false)))
	t.RawSetString("bg", L.NewFunction(colorFunc(true)))
	return t
}

func colorFunc(bg bool) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.CheckInt(1)
		if n < 0 || n > 255 {
			L.ArgError(1, "colour must be between 0 and 255")
		}
		L.Push(colorSequence(n, bg))
		return 1
	}
}
