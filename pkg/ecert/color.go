package ecert

import (
	"fmt"
	"strconv"
	"strings"
)

type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var Black = Color{}

// ParseHexColor accepts "#rrggbb" (the leading # is optional).
func ParseHexColor(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalized returns the channels on the 0-1 scale PDF color operators use.
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
