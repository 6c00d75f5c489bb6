package ecert

import "fmt"

// Previews are rasterized at this magnification of the page's point size before the
// display shrinks them further.
const PreviewRasterScale = 1.5

// ResolveMaxWidth returns the usable text width. Landscape certificates reserve a wider
// margin for their borders.
func ResolveMaxWidth(pageWidth float64, orientation Orientation) float64 {
	if orientation == OrientationLandscape {
		return pageWidth * 0.7
	}
	return pageWidth * 0.8
}

type yOffsetBand struct {
	orientation Orientation
	minHeight   float64
	transform   func(delta float64) float64
}

// Calibrated per display size because the preview's display scale is not reported.
// Checked in order, first match wins; delta is previewHeight - anchorY.
var yOffsetBands = []yOffsetBand{
	{OrientationLandscape, 595, func(d float64) float64 { return d - 4 }},
	{OrientationPortrait, 842, func(d float64) float64 { return d }},
	{OrientationLandscape, 417, func(d float64) float64 { return d / 0.7 }},
	{OrientationPortrait, 589, func(d float64) float64 { return d/0.7 + 5 }},
	{OrientationLandscape, 298, func(d float64) float64 { return d/0.5 - 5 }},
	{OrientationPortrait, 421, func(d float64) float64 { return d/0.5 + 5 }},
	{OrientationLandscape, 238, func(d float64) float64 { return d/0.4 - 15 }},
}

// ResolveYOffset maps an anchor captured on a preview of the given displayed height to a
// point-space Y coordinate measured from the bottom of the page.
func ResolveYOffset(previewHeight, anchorY float64, orientation Orientation) float64 {
	delta := previewHeight - anchorY
	for _, band := range yOffsetBands {
		if band.orientation == orientation && previewHeight >= band.minHeight {
			return band.transform(delta)
		}
	}
	return delta/0.4 - 5
}

// Anchor is the vertical position, in preview pixels from the top, that the name is placed at.
// Text is always centered horizontally.
type Anchor struct {
	Y             float64     `json:"y"`
	PreviewHeight float64     `json:"previewHeight"`
	Orientation   Orientation `json:"orientation"`
	// Preview pixels per document point. Zero when the preview does not report it.
	Scale float64 `json:"scale,omitempty"`
}

func (a Anchor) Validate() error {
	if a.Y < 0 {
		return fmt.Errorf("anchor y must not be negative, got %.2f", a.Y)
	}
	if a.Scale < 0 {
		return fmt.Errorf("preview scale must not be negative, got %.4f", a.Scale)
	}
	if a.Scale == 0 && a.PreviewHeight <= 0 {
		return fmt.Errorf("preview height must be positive when the preview scale is unknown")
	}
	if a.Orientation != "" && !a.Orientation.Valid() {
		return fmt.Errorf("invalid orientation %q", a.Orientation)
	}
	return nil
}

// YOffset resolves the anchor against a page. A known preview scale gives an exact
// conversion; otherwise the calibrated bands are used.
func (a Anchor) YOffset(pageHeight float64, orientation Orientation) float64 {
	if a.Scale > 0 {
		return pageHeight - a.Y/a.Scale
	}
	if a.Orientation != "" {
		orientation = a.Orientation
	}
	return ResolveYOffset(a.PreviewHeight, a.Y, orientation)
}

// Layout is the geometry shared by every render of a batch. Build a new one whenever the
// template, style or anchor changes.
type Layout struct {
	Template *Template
	Style    Style
	Anchor   Anchor
	MaxWidth float64
	YOffset  float64
}

func NewLayout(tpl *Template, style Style, anchor Anchor) (*Layout, error) {
	if tpl == nil {
		return nil, ErrEmptySelection
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if err := anchor.Validate(); err != nil {
		return nil, err
	}

	return &Layout{
		Template: tpl,
		Style:    style,
		Anchor:   anchor,
		MaxWidth: ResolveMaxWidth(tpl.Width(), tpl.Orientation()),
		YOffset:  anchor.YOffset(tpl.Height(), tpl.Orientation()),
	}, nil
}
