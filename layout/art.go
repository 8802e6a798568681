package layout

import (
	"strings"

	"freshfetch/ascii"
	"freshfetch/assets"
	"freshfetch/errors"
	"freshfetch/inject"
	"freshfetch/metrics"
	"freshfetch/render"
)

// Art is the logo block printed beside the info panel.
type Art struct {
	info     *Info
	renderer *render.Renderer
	doc      render.Document
	logo     string

	text string
	dims metrics.Dimensions
}

// NewArt builds the art block. logo forces a built-in logo by name; empty
// picks the one matching the detected distribution.
func NewArt(info *Info, renderer *render.Renderer, userPath, logo string) *Art {
	return &Art{
		info:     info,
		renderer: renderer,
		doc:      render.Document{Name: "art", UserPath: userPath, Default: assets.Art},
		logo:     logo,
	}
}

// Prepare renders the art document. Info must already be prepared: its size
// is handed to the art template as a sizing cue.
func (a *Art) Prepare() error {
	lines := ascii.ForDistro(a.info.DistroName(), a.info.KernelName())
	if a.logo != "" {
		var ok bool
		if lines, ok = ascii.Lookup(a.logo); !ok {
			return errors.Newf(errors.ErrConfig, "unknown logo %q, expected one of %s",
				a.logo, strings.Join(ascii.Names(), ", ")).WithSubject(a.logo)
		}
	}

	d := a.info.Dimensions()
	reg := inject.NewRegistry()
	if err := reg.Set("logo", inject.String(strings.Join(lines, "\n"))); err != nil {
		return err
	}
	if err := reg.Set("distro", inject.String(a.info.DistroName())); err != nil {
		return err
	}
	if err := reg.Set("infoWidth", inject.Int(int64(d.Width))); err != nil {
		return err
	}
	if err := reg.Set("infoHeight", inject.Int(int64(d.Height))); err != nil {
		return err
	}

	text, err := a.renderer.Render(a.doc, reg)
	if err != nil {
		return err
	}
	a.text = text
	a.dims = metrics.Measure(text)
	return nil
}

// Publish writes art, artWidth and artHeight.
func (a *Art) Publish(r *inject.Registry) error {
	return publishBlock(r, "art", a.text, a.dims)
}
