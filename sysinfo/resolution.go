package sysinfo

import "freshfetch/inject"

// Resolution is the size of the primary display in pixels. Both fields are
// zero when it is unknown.
type Resolution struct {
	inject.Static
	Width  int64
	Height int64
}

// NewResolution queries the primary display.
func NewResolution() *Resolution {
	w, h := screenResolution()
	return &Resolution{Width: w, Height: h}
}

// Publish writes the resolution table.
func (res *Resolution) Publish(r *inject.Registry) error {
	return r.PublishRecord("resolution",
		inject.F("width", inject.Int(res.Width)),
		inject.F("height", inject.Int(res.Height)),
	)
}
