package ecert

import "fmt"

const (
	MinFontSize     = 0
	MaxFontSize     = 99
	DefaultFontSize = 24
)

// Style applies uniformly to every certificate of a batch.
type Style struct {
	Font  FontID `json:"font"`
	Size  int    `json:"size"`
	Color Color  `json:"color"`
}

func DefaultStyle() Style {
	return Style{
		Font:  DefaultFont,
		Size:  DefaultFontSize,
		Color: Black,
	}
}

func (s Style) Validate() error {
	if !s.Font.Valid() {
		return fmt.Errorf("invalid font id %d", int(s.Font))
	}
	if s.Size < MinFontSize || s.Size > MaxFontSize {
		return fmt.Errorf("font size must be between %d and %d, got %d", MinFontSize, MaxFontSize, s.Size)
	}
	return nil
}
