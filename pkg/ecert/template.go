package ecert

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

func (o Orientation) Valid() bool {
	return o == OrientationLandscape || o == OrientationPortrait
}

// A4 tolerance bands in points. The long side is about 842pt and the short side about 596pt.
const (
	longSideMin  = 841.0
	longSideMax  = 843.0
	shortSideMin = 595.0
	shortSideMax = 597.0
)

func inBand(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// ValidateDimensions accepts A4 landscape or A4 portrait page sizes and returns the orientation.
func ValidateDimensions(width, height float64) (Orientation, error) {
	switch {
	case inBand(width, longSideMin, longSideMax):
		if !inBand(height, shortSideMin, shortSideMax) {
			return "", &DimensionMismatchError{Axis: AxisHeight, Width: width, Height: height}
		}
		return OrientationLandscape, nil
	case inBand(width, shortSideMin, shortSideMax):
		if !inBand(height, longSideMin, longSideMax) {
			return "", &DimensionMismatchError{Axis: AxisHeight, Width: width, Height: height}
		}
		return OrientationPortrait, nil
	default:
		return "", &DimensionMismatchError{Axis: AxisWidth, Width: width, Height: height}
	}
}

// Template is an accepted certificate template. It is never modified after LoadTemplate;
// renders decode their own copy from the raw bytes.
type Template struct {
	data        []byte
	width       float64
	height      float64
	orientation Orientation
	pageCount   int
}

// LoadTemplate decodes and validates raw template bytes: the document must have exactly
// one page and that page must be A4 in either orientation.
func LoadTemplate(data []byte, conf *model.Configuration) (*Template, error) {
	if conf == nil {
		conf = NewDefaultConfig().PDFConfiguration()
	}

	ctx, err := decode(data, conf)
	if err != nil {
		return nil, err
	}

	if ctx.PageCount != 1 {
		return nil, &MultiPageError{Pages: ctx.PageCount}
	}

	width, height, err := pageSize(ctx, 1)
	if err != nil {
		return nil, err
	}

	orientation, err := ValidateDimensions(width, height)
	if err != nil {
		return nil, err
	}

	return &Template{
		data:        bytes.Clone(data),
		width:       width,
		height:      height,
		orientation: orientation,
		pageCount:   ctx.PageCount,
	}, nil
}

func (t *Template) Width() float64           { return t.width }
func (t *Template) Height() float64          { return t.height }
func (t *Template) Orientation() Orientation { return t.orientation }
func (t *Template) PageCount() int           { return t.pageCount }

// Bytes returns a copy of the raw template document.
func (t *Template) Bytes() []byte {
	return bytes.Clone(t.data)
}
