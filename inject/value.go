// Package inject defines the contract between the components that gather
// data and the Lua templates that render it. Components publish typed values
// into a Registry; the render pipeline hands the registry to a fresh Lua
// state in one step right before a template runs.
package inject

// Kind tags the variants of Value.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// Value is a closed set of publishable values: Int, String and Record.
type Value interface {
	Kind() Kind
	value()
}

// Int is an integer global or field.
type Int int64

// String is a string global or field.
type String string

// Field is one named entry of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered set of named fields, published as a Lua table.
type Record []Field

func (Int) Kind() Kind    { return KindInt }
func (String) Kind() Kind { return KindString }
func (Record) Kind() Kind { return KindRecord }

func (Int) value()    {}
func (String) value() {}
func (Record) value() {}

// F builds a Field.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
