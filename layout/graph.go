package layout

import (
	"github.com/gammazero/toposort"

	"freshfetch/errors"
	"freshfetch/inject"
)

// sink is the implicit node every block feeds into: the top-level render.
// Routing every block into it keeps blocks without dependencies in the
// sorted output.
const sink = "layout"

// Graph orders blocks by their dependencies.
type Graph struct {
	names  []string
	blocks map[string]inject.Injectable
	deps   map[string][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		blocks: make(map[string]inject.Injectable),
		deps:   make(map[string][]string),
	}
}

// Add registers a block that must be prepared after every block in deps.
func (g *Graph) Add(name string, block inject.Injectable, deps ...string) {
	if _, ok := g.blocks[name]; !ok {
		g.names = append(g.names, name)
	}
	g.blocks[name] = block
	g.deps[name] = deps
}

// Block returns the named block.
func (g *Graph) Block(name string) inject.Injectable {
	return g.blocks[name]
}

// Order returns the prepare order and the publish order. A block is prepared
// after its dependencies and published before them, so a dependency's
// globals are written last.
func (g *Graph) Order() (prepare, publish []string, err error) {
	edges := make([]toposort.Edge, 0, len(g.names)*2)
	for _, name := range g.names {
		if name == sink {
			return nil, nil, errors.New(errors.ErrGraph, "block name is reserved").WithSubject(name)
		}
		for _, dep := range g.deps[name] {
			if _, ok := g.blocks[dep]; !ok {
				return nil, nil, errors.Newf(errors.ErrGraph, "unknown dependency %q", dep).WithSubject(name)
			}
			edges = append(edges, toposort.Edge{dep, name})
		}
		edges = append(edges, toposort.Edge{name, sink})
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrGraph, "order blocks")
	}

	for _, node := range sorted {
		if name := node.(string); name != sink {
			prepare = append(prepare, name)
		}
	}
	publish = make([]string, len(prepare))
	for i, name := range prepare {
		publish[len(prepare)-1-i] = name
	}
	return prepare, publish, nil
}
