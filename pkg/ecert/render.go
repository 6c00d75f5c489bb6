package ecert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Line is one wrapped line of text positioned in page space.
type Line struct {
	Text string
	// left edge and baseline, in points from the bottom-left corner
	X, Y  float64
	Width float64
}

// PlaceLines wraps text and positions every line: centered horizontally, the first
// baseline one line below yOffset, moved up half a line when the text wraps.
func PlaceLines(text string, style Style, pageWidth, maxWidth, yOffset float64) ([]Line, error) {
	size := float64(style.Size)

	texts, err := Wrap(text, style.Font, size, maxWidth)
	if err != nil {
		return nil, err
	}

	lineHeight := style.Font.LineHeight(size)
	baseline := yOffset - lineHeight
	if len(texts) > 1 {
		baseline += lineHeight / 2
	}

	lines := make([]Line, 0, len(texts))
	for _, t := range texts {
		width, err := style.Font.TextWidth(t, size)
		if err != nil {
			return nil, err
		}

		lines = append(lines, Line{
			Text:  t,
			X:     pageWidth/2 - width/2,
			Y:     baseline,
			Width: width,
		})
		baseline -= lineHeight
	}

	return lines, nil
}

// Renderer draws text onto single-page templates. It holds no document state and is safe
// for concurrent use.
type Renderer struct {
	cfg *Config
}

func NewRenderer(cfg *Config) *Renderer {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &Renderer{cfg: cfg}
}

// Render decodes its own copy of template, draws text onto page 1 and returns the
// serialized document. The template slice is only read.
func (r *Renderer) Render(template []byte, style Style, text string, maxWidth, yOffset float64) ([]byte, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	conf := r.cfg.PDFConfiguration()

	ctx, err := decode(template, conf)
	if err != nil {
		return nil, err
	}

	pageWidth, _, err := pageSize(ctx, 1)
	if err != nil {
		return nil, err
	}

	if style.Size > 0 {
		lines, err := PlaceLines(text, style, pageWidth, maxWidth, yOffset)
		if err != nil {
			return nil, err
		}

		if err := stamp(ctx, style, lines); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	return normalizeDocument(buf.Bytes())
}

// RenderLayout renders name with the geometry precomputed in layout.
func (r *Renderer) RenderLayout(layout *Layout, name string) ([]byte, error) {
	if layout == nil || layout.Template == nil {
		return nil, ErrEmptySelection
	}
	return r.Render(layout.Template.data, layout.Style, name, layout.MaxWidth, layout.YOffset)
}

// escapeStampText escapes text for pdfcpu, which treats % as the start of a page number,
// page count, timestamp or version placeholder. A run of n percent signs is written as n+1.
// A run directly followed by one of the placeholder letters cannot be escaped.
func escapeStampText(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) + 2)

	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			b.WriteByte(text[i])
			continue
		}

		j := i
		for j < len(text) && text[j] == '%' {
			j++
		}
		if j < len(text) && strings.IndexByte("pPtv", text[j]) >= 0 {
			return "", &PlaceholderError{Text: text, Sequence: text[j-1 : j+1]}
		}

		b.WriteString(strings.Repeat("%", j-i+1))
		i = j - 1
	}

	return b.String(), nil
}

// stamp draws every line onto page 1 of ctx in one pass. Stamps are positioned by their
// bounding box, which reaches below the baseline by the font's descent.
func stamp(ctx *model.Context, style Style, lines []Line) error {
	red, green, blue := style.Color.Normalized()

	wms := make([]*model.Watermark, 0, len(lines))
	for _, line := range lines {
		text, err := escapeStampText(line.Text)
		if err != nil {
			return err
		}

		description := fmt.Sprintf(
			"fontname:%s, points:%d, fillcolor:%.4f %.4f %.4f, pos:bl, off:%.2f %.2f, scale:1 abs, rotation:0, opacity:1",
			style.Font, style.Size, red, green, blue,
			line.X, line.Y+style.Font.Descent(float64(style.Size)),
		)

		wm, err := api.TextWatermark(text, description, true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("failed to prepare text stamp: %w", err)
		}
		wms = append(wms, wm)
	}

	if len(wms) == 0 {
		return nil
	}

	if err := pdfcpu.AddWatermarksSliceMap(ctx, map[int][]*model.Watermark{1: wms}); err != nil {
		return fmt.Errorf("failed to stamp text: %w", err)
	}

	return nil
}
