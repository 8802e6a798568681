package render

import (
	lua "github.com/yuin/gopher-lua"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Templates get the pure libraries plus os (for os.date and os.getenv).
// io and debug are left out.
var libs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
	{lua.OsLibName, lua.OpenOs},
}

func newState() *lua.LState {
	return lua.NewState(lua.Options{SkipOpenLibs: true})
}

func openLibs(L *lua.LState) error {
	for _, lib := range libs {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return err
		}
	}
	return nil
}

// handoff copies every registry global into the Lua global table.
func handoff(L *lua.LState, reg *inject.Registry) error {
	if reg == nil {
		return nil
	}
	return reg.Each(func(name string, v inject.Value) error {
		lv, err := toLua(L, v)
		if err != nil {
			return errors.Wrap(err, errors.ErrPublish, "convert value").WithSubject(name)
		}
		L.SetGlobal(name, lv)
		return nil
	})
}

func toLua(L *lua.LState, v inject.Value) (lua.LValue, error) {
	switch val := v.(type) {
	case inject.Int:
		return lua.LNumber(val), nil
	case inject.String:
		return lua.LString(val), nil
	case inject.Record:
		t := L.NewTable()
		for _, f := range val {
			fv, err := toLua(L, f.Value)
			if err != nil {
				return nil, err
			}
			t.RawSetString(f.Name, fv)
		}
		return t, nil
	}
	return nil, errors.Newf(errors.ErrPublish, "unsupported value %T", v)
}
