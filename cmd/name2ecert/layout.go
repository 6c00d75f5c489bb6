package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/spf13/pflag"
)

// layoutOptions mirrors the style and anchor fields of the HTTP API.
type layoutOptions struct {
	template      string
	font          string
	size          int
	color         string
	anchorY       float64
	previewHeight float64
	orientation   string
	scale         float64
}

func (o *layoutOptions) bindFlags(flags *pflag.FlagSet) {
	style := ecert.DefaultStyle()

	flags.StringVarP(&o.template, "template", "t", "", "Single-page A4 PDF template (required)")
	flags.StringVar(&o.font, "font", style.Font.String(), "Standard font name, see 'name2ecert fonts'")
	flags.IntVar(&o.size, "size", style.Size, fmt.Sprintf("Font size in points (%d-%d)", ecert.MinFontSize, ecert.MaxFontSize))
	flags.StringVar(&o.color, "color", style.Color.Hex(), "Text color as #rrggbb")
	flags.Float64Var(&o.anchorY, "anchor-y", 0, "Vertical anchor in preview pixels from the top of the page")
	flags.Float64Var(&o.previewHeight, "preview-height", 0, "Height in pixels of the preview the anchor was picked on")
	flags.StringVar(&o.orientation, "orientation", "", "Preview orientation (landscape|portrait), defaults to the template's")
	flags.Float64Var(&o.scale, "scale", 0, "Preview pixels per point. Without it and --preview-height, --anchor-y is in points")
}

func (o *layoutOptions) loadTemplate(cfg *ecert.Config) (*ecert.Template, error) {
	if o.template == "" {
		return nil, fmt.Errorf("--template is required")
	}

	data, err := os.ReadFile(o.template)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	return ecert.LoadTemplate(data, cfg.PDFConfiguration())
}

func (o *layoutOptions) build(cfg *ecert.Config) (*ecert.Layout, error) {
	tpl, err := o.loadTemplate(cfg)
	if err != nil {
		return nil, err
	}

	font, err := ecert.ParseFontID(o.font)
	if err != nil {
		return nil, err
	}

	color, err := ecert.ParseHexColor(o.color)
	if err != nil {
		return nil, err
	}

	anchor := ecert.Anchor{
		Y:             o.anchorY,
		PreviewHeight: o.previewHeight,
		Orientation:   ecert.Orientation(strings.ToLower(o.orientation)),
		Scale:         o.scale,
	}
	if anchor.Scale == 0 && anchor.PreviewHeight == 0 {
		anchor.Scale = 1
	}

	return ecert.NewLayout(tpl, ecert.Style{Font: font, Size: o.size, Color: color}, anchor)
}
