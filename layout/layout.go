// Package layout composes the info panel, the art and the terminal size into
// the final output. Blocks are prepared in dependency order, published in
// reverse, and the layout document is rendered against everything they
// published.
package layout

import (
	"github.com/rs/zerolog"

	"freshfetch/assets"
	"freshfetch/errors"
	"freshfetch/inject"
	"freshfetch/logging"
	"freshfetch/render"
	"freshfetch/sysinfo"
)

// State is the lifecycle position of a Layout.
type State int

const (
	Constructed State = iota
	Prepared
	Published
	Rendered
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "constructed"
	case Prepared:
		return "prepared"
	case Published:
		return "published"
	case Rendered:
		return "rendered"
	}
	return "unknown"
}

// Options names the override templates and the forced logo.
type Options struct {
	InfoPath   string
	ArtPath    string
	LayoutPath string
	Logo       string
}

// Layout runs one render pass.
type Layout struct {
	graph    *Graph
	registry *inject.Registry
	renderer *render.Renderer
	doc      render.Document
	state    State
	logger   zerolog.Logger
}

// New wires the info, art and terminal blocks.
func New(facts *sysinfo.Facts, term *sysinfo.Terminal, renderer *render.Renderer, opts Options) *Layout {
	info := NewInfo(facts, renderer, opts.InfoPath)

	g := NewGraph()
	g.Add("info", info)
	g.Add("art", NewArt(info, renderer, opts.ArtPath, opts.Logo), "info")
	g.Add("terminal", term)

	return &Layout{
		graph:    g,
		registry: inject.NewRegistry(),
		renderer: renderer,
		doc:      render.Document{Name: "layout", UserPath: opts.LayoutPath, Default: assets.Layout},
		state:    Constructed,
		logger:   logging.GetLogger("layout"),
	}
}

// State returns the current lifecycle state.
func (l *Layout) State() State {
	return l.state
}

// Registry returns the globals handed to the layout document.
func (l *Layout) Registry() *inject.Registry {
	return l.registry
}

// Prepare runs every block's deferred work in dependency order.
func (l *Layout) Prepare() error {
	if err := l.expect(Constructed); err != nil {
		return err
	}
	order, _, err := l.graph.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		l.logger.Debug().Str("block", name).Msg("Preparing block")
		if err := l.graph.Block(name).Prepare(); err != nil {
			return err
		}
	}
	l.state = Prepared
	return nil
}

// Publish writes every block's globals into the layout registry.
func (l *Layout) Publish() error {
	if err := l.expect(Prepared); err != nil {
		return err
	}
	_, order, err := l.graph.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		l.logger.Debug().Str("block", name).Msg("Publishing block")
		if err := l.graph.Block(name).Publish(l.registry); err != nil {
			return err
		}
	}
	l.state = Published
	return nil
}

// Render executes the layout document and returns the final output.
func (l *Layout) Render() (string, error) {
	if err := l.expect(Published); err != nil {
		return "", err
	}
	out, err := l.renderer.Render(l.doc, l.registry)
	if err != nil {
		return "", err
	}
	l.state = Rendered
	return out, nil
}

// Run drives the layout through every state and returns the output.
func (l *Layout) Run() (string, error) {
	done := logging.LogOperationStart(l.logger, "layout")
	defer done()

	if err := l.Prepare(); err != nil {
		return "", err
	}
	if err := l.Publish(); err != nil {
		return "", err
	}
	return l.Render()
}

func (l *Layout) expect(want State) error {
	if l.state != want {
		return errors.Newf(errors.ErrGraph, "layout is %s, expected %s", l.state, want)
	}
	return nil
}
