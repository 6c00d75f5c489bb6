package ecert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monospace measures every rune as one unit wide per point of size.
type monospace struct{}

func (monospace) TextWidth(text string, size float64) (float64, error) {
	return float64(len([]rune(text))) * size, nil
}

func (monospace) LineHeight(size float64) float64 { return size }

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		expected []string
	}{
		{"fits on one line", "Ada Lovelace", 20, []string{"Ada Lovelace"}},
		{"exact fit", "Ada Lovelace", 12, []string{"Ada Lovelace"}},
		{"breaks between words", "Ada Lovelace", 11, []string{"Ada", "Lovelace"}},
		{"greedy packing", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"long word keeps its own line", "a extraordinarily b", 5, []string{"a", "extraordinarily", "b"}},
		{"collapses whitespace", "  Grace \t Hopper ", 20, []string{"Grace Hopper"}},
		{"empty", "   ", 20, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Wrap(tt.text, monospace{}, 1, tt.maxWidth)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestWrapProperties(t *testing.T) {
	names := []string{
		"Participant's Name That Is Long Should Be Printed In This Format And Outline",
		"Maria Magdalena von Hohenzollern-Sigmaringen",
		"Jo",
		"Wolfeschlegelsteinhausenbergerdorff Senior",
	}

	for _, font := range Fonts() {
		for _, name := range names {
			lines, err := Wrap(name, font, 24, 300)
			require.NoError(t, err)

			for _, line := range lines {
				width, err := font.TextWidth(line, 24)
				require.NoError(t, err)
				if strings.Contains(line, " ") {
					assert.LessOrEqual(t, width, 300.0, "%s: %q", font, line)
				}
			}

			assert.Equal(t, strings.Fields(name), strings.Fields(strings.Join(lines, " ")))
		}
	}
}

func TestWrapMeasurementError(t *testing.T) {
	_, err := Wrap("Łukasz Nowak", Helvetica, 24, 500)

	var measureErr *MeasurementError
	require.ErrorAs(t, err, &measureErr)
	assert.Equal(t, 'Ł', measureErr.Rune)
	assert.ErrorIs(t, err, ErrMeasurement)

	// Single words are measured too.
	_, err = Wrap("Łukasz", Helvetica, 24, 500)
	assert.ErrorIs(t, err, ErrMeasurement)
}
