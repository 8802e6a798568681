package layout

import (
	"freshfetch/assets"
	"freshfetch/inject"
	"freshfetch/metrics"
	"freshfetch/render"
	"freshfetch/sysinfo"
)

// Info is the info panel. Preparing it renders the info document against
// the system facts and measures the result.
type Info struct {
	facts    *sysinfo.Facts
	renderer *render.Renderer
	doc      render.Document

	text string
	dims metrics.Dimensions
}

// NewInfo builds the info block. userPath is the optional override template.
func NewInfo(facts *sysinfo.Facts, renderer *render.Renderer, userPath string) *Info {
	return &Info{
		facts:    facts,
		renderer: renderer,
		doc:      render.Document{Name: "info", UserPath: userPath, Default: assets.Info},
	}
}

// Prepare runs the nested info render in a registry of its own.
func (i *Info) Prepare() error {
	reg := inject.NewRegistry()
	if err := i.publishFacts(reg); err != nil {
		return err
	}

	text, err := i.renderer.Render(i.doc, reg)
	if err != nil {
		return err
	}
	i.text = text
	i.dims = metrics.Measure(text)
	return nil
}

// Publish writes info, infoWidth and infoHeight together with the facts, so
// the top-level template sees the same globals the info template did.
func (i *Info) Publish(r *inject.Registry) error {
	if err := i.publishFacts(r); err != nil {
		return err
	}
	return publishBlock(r, "info", i.text, i.dims)
}

// Dimensions returns the measured size of the rendered panel. It is zero
// before Prepare.
func (i *Info) Dimensions() metrics.Dimensions {
	return i.dims
}

// DistroName is the detected distribution's short name.
func (i *Info) DistroName() string {
	return i.facts.Distro.ShortName
}

// KernelName is the detected kernel family.
func (i *Info) KernelName() string {
	return i.facts.Kernel.Name
}

func (i *Info) publishFacts(r *inject.Registry) error {
	for _, p := range i.facts.Providers() {
		if err := p.Prepare(); err != nil {
			return err
		}
		if err := p.Publish(r); err != nil {
			return err
		}
	}
	return nil
}

// publishBlock writes a rendered block and its measured size as name,
// nameWidth and nameHeight.
func publishBlock(r *inject.Registry, name, text string, d metrics.Dimensions) error {
	if err := r.Set(name, inject.String(text)); err != nil {
		return err
	}
	if err := r.Set(name+"Width", inject.Int(int64(d.Width))); err != nil {
		return err
	}
	return r.Set(name+"Height", inject.Int(int64(d.Height)))
}
