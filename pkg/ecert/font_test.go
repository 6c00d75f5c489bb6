package ecert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFonts(t *testing.T) {
	assert.Len(t, Fonts(), 12)
	assert.Equal(t, []string{
		"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique",
		"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique",
		"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic",
	}, FontNames())

	for _, name := range FontNames() {
		id, err := ParseFontID(name)
		require.NoError(t, err)
		assert.Equal(t, name, id.String())
	}

	_, err := ParseFontID("Comic Sans")
	assert.Error(t, err)
	assert.False(t, FontID(12).Valid())
}

func TestFontTextMarshaling(t *testing.T) {
	var id FontID
	require.NoError(t, id.UnmarshalText([]byte("Times-Italic")))
	assert.Equal(t, TimesItalic, id)

	_, err := FontID(-1).MarshalText()
	assert.Error(t, err)
}

func TestFontMetrics(t *testing.T) {
	// Courier glyphs are all 600 units wide.
	width, err := Courier.TextWidth("abcde", 10)
	require.NoError(t, err)
	assert.InDelta(t, 30, width, 1e-9)

	assert.InDelta(t, 18.5, Helvetica.LineHeight(20), 1e-9)
	assert.InDelta(t, -4.5, Helvetica.Descent(20), 1e-9)

	wide, err := HelveticaBold.TextWidth("William", 24)
	require.NoError(t, err)
	narrow, err := HelveticaBold.TextWidth("William", 12)
	require.NoError(t, err)
	assert.InDelta(t, wide, narrow*2, 1e-9)

	// Windows-1252 covers Western European accents.
	_, err = TimesRoman.TextWidth("José Müller Žižek", 12)
	assert.NoError(t, err)

	_, err = TimesRoman.TextWidth("Nguyễn", 12)
	assert.ErrorIs(t, err, ErrMeasurement)
}
