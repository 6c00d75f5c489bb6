package ecert

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/charmap"
)

// FontID is one of the twelve standard PDF fonts a batch can be set in.
type FontID int

const (
	Courier FontID = iota
	CourierBold
	CourierOblique
	CourierBoldOblique
	Helvetica
	HelveticaBold
	HelveticaOblique
	HelveticaBoldOblique
	TimesRoman
	TimesBold
	TimesItalic
	TimesBoldItalic
)

const DefaultFont = HelveticaOblique

// FontMetrics measures text for the layout engine. Widths and heights are in points.
type FontMetrics interface {
	TextWidth(text string, size float64) (float64, error)
	LineHeight(size float64) float64
}

// Vertical metrics in glyph space units (1/1000 em), taken from the Adobe core font AFMs.
type fontMetadata struct {
	name      string
	ascender  float64
	descender float64
	// lower edge of FontBBox
	bboxBottom float64
}

var fontTable = [...]fontMetadata{
	Courier:              {"Courier", 629, -157, -250},
	CourierBold:          {"Courier-Bold", 629, -157, -250},
	CourierOblique:       {"Courier-Oblique", 629, -157, -250},
	CourierBoldOblique:   {"Courier-BoldOblique", 629, -157, -250},
	Helvetica:            {"Helvetica", 718, -207, -225},
	HelveticaBold:        {"Helvetica-Bold", 718, -207, -228},
	HelveticaOblique:     {"Helvetica-Oblique", 718, -207, -225},
	HelveticaBoldOblique: {"Helvetica-BoldOblique", 718, -207, -228},
	TimesRoman:           {"Times-Roman", 683, -217, -218},
	TimesBold:            {"Times-Bold", 683, -217, -218},
	TimesItalic:          {"Times-Italic", 683, -217, -217},
	TimesBoldItalic:      {"Times-BoldItalic", 683, -217, -218},
}

// Fonts lists every selectable font in menu order.
func Fonts() []FontID {
	return lo.Times(len(fontTable), func(i int) FontID { return FontID(i) })
}

// FontNames lists the PDF base font names of Fonts.
func FontNames() []string {
	return lo.Map(Fonts(), func(f FontID, _ int) string { return f.String() })
}

func ParseFontID(name string) (FontID, error) {
	for i, meta := range fontTable {
		if meta.name == name {
			return FontID(i), nil
		}
	}
	return 0, fmt.Errorf("font %q is not one of the standard fonts", name)
}

func (f FontID) Valid() bool {
	return f >= 0 && int(f) < len(fontTable)
}

func (f FontID) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FontID(%d)", int(f))
	}
	return fontTable[f].name
}

func (f FontID) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid font id %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *FontID) UnmarshalText(b []byte) error {
	id, err := ParseFontID(string(b))
	if err != nil {
		return err
	}
	*f = id
	return nil
}

// Standard fonts are drawn with WinAnsiEncoding, so every rune has to map onto a single
// Windows-1252 byte before it can be measured or drawn.
func (f FontID) checkEncodable(text string) error {
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return &MeasurementError{Text: text, Rune: r, Font: f}
		}
	}
	return nil
}

func (f FontID) TextWidth(text string, size float64) (float64, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("invalid font id %d", int(f))
	}
	if err := f.checkEncodable(text); err != nil {
		return 0, err
	}
	// Measured at 1000pt so the result is in glyph space units, then scaled.
	return font.TextWidth(text, f.String(), 1000) * size / 1000, nil
}

func (f FontID) LineHeight(size float64) float64 {
	meta := fontTable[f]
	return (meta.ascender - meta.descender) / 1000 * size
}

// Descent returns how far the font bounding box reaches below the baseline, as a
// non-positive offset in points.
func (f FontID) Descent(size float64) float64 {
	return fontTable[f].bboxBottom / 1000 * size
}

// FontInfo describes a font's vertical metrics in glyph space units.
type FontInfo struct {
	Name      string  `json:"name"`
	Ascender  float64 `json:"ascender"`
	Descender float64 `json:"descender"`
}

func (f FontID) Info() FontInfo {
	meta := fontTable[f]
	return FontInfo{Name: meta.name, Ascender: meta.ascender, Descender: meta.descender}
}
