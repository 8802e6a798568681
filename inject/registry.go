package inject

import (
	"regexp"

	"freshfetch/errors"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Injectable is implemented by every fact provider and every layout block.
//
// Prepare performs deferred work that needs other, already prepared,
// components. It never publishes. Publish writes the component's values into
// the registry; calling it twice overwrites the first result.
type Injectable interface {
	Prepare() error
	Publish(r *Registry) error
}

// Static provides a no-op Prepare for components with nothing deferred.
type Static struct{}

// Prepare does nothing.
func (Static) Prepare() error { return nil }

// Registry is the namespace of globals for one render pass. Names are
// unique; a later Set replaces the earlier value.
type Registry struct {
	order  []string
	values map[string]Value
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]Value)}
}

// Set publishes a global.
func (r *Registry) Set(name string, v Value) error {
	if err := validate(name, v); err != nil {
		return err.WithSubject(name)
	}
	if rec, ok := v.(Record); ok {
		if err := validateRecord(rec); err != nil {
			return err.WithSubject(name)
		}
	}
	if _, exists := r.values[name]; !exists {
		r.order = append(r.order, name)
	}
	r.values[name] = v
	return nil
}

// PublishRecord validates every field and publishes them as one record
// global. The first invalid field aborts the publish and nothing is
// written.
func (r *Registry) PublishRecord(name string, fields ...Field) error {
	return r.Set(name, Record(fields))
}

// Get returns the named global.
func (r *Registry) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the global names in first-publish order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of globals.
func (r *Registry) Len() int {
	return len(r.order)
}

// Each calls fn for every global in first-publish order and stops at the
// first error.
func (r *Registry) Each(fn func(name string, v Value) error) error {
	for _, name := range r.order {
		if err := fn(name, r.values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Reset removes every global.
func (r *Registry) Reset() {
	r.order = nil
	r.values = make(map[string]Value)
}

func validate(name string, v Value) *errors.FetchError {
	if !identifier.MatchString(name) {
		return errors.Newf(errors.ErrPublish, "%q is not a valid Lua identifier", name)
	}
	if v == nil {
		return errors.Newf(errors.ErrPublish, "%q has no value", name)
	}
	return nil
}

func validateRecord(rec Record) *errors.FetchError {
	seen := make(map[string]struct{}, len(rec))
	for _, f := range rec {
		if err := validate(f.Name, f.Value); err != nil {
			return err
		}
		if _, dup := seen[f.Name]; dup {
			return errors.Newf(errors.ErrPublish, "field %q is published twice", f.Name)
		}
		seen[f.Name] = struct{}{}
		if nested, ok := f.Value.(Record); ok {
			if err := validateRecord(nested); err != nil {
				return err
			}
		}
	}
	return nil
}
