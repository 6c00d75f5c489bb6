package ecert

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceLines(t *testing.T) {
	style := Style{Font: Courier, Size: 10, Color: Black}
	lineHeight := Courier.LineHeight(10)

	t.Run("single line sits one line below the anchor", func(t *testing.T) {
		lines, err := PlaceLines("Ada", style, 842, 500, 300)
		require.NoError(t, err)
		require.Len(t, lines, 1)

		// Courier is 6pt per glyph at 10pt.
		assert.InDelta(t, 18, lines[0].Width, 1e-9)
		assert.InDelta(t, 421-9, lines[0].X, 1e-9)
		assert.InDelta(t, 300-lineHeight, lines[0].Y, 1e-9)
	})

	t.Run("wrapped block is raised half a line", func(t *testing.T) {
		lines, err := PlaceLines("Ada Lovelace", style, 842, 40, 300)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, "Ada", lines[0].Text)
		assert.Equal(t, "Lovelace", lines[1].Text)
		assert.InDelta(t, 300-lineHeight/2, lines[0].Y, 1e-9)
		assert.InDelta(t, 300-lineHeight*1.5, lines[1].Y, 1e-9)
		assert.InDelta(t, 421-24, lines[1].X, 1e-9)
	})
}

func TestRender(t *testing.T) {
	tpl := landscapeTemplate(t)
	renderer := NewRenderer(nil)
	style := DefaultStyle()

	t.Run("draws the name", func(t *testing.T) {
		doc, err := renderer.Render(tpl.Bytes(), style, "Ada Lovelace", 589, 300)
		require.NoError(t, err)
		assert.Equal(t, 1, pageCount(t, doc))
		assert.True(t, containsText(t, doc, "Ada Lovelace"))

		// Output is still a valid template.
		out, err := LoadTemplate(doc, nil)
		require.NoError(t, err)
		assert.Equal(t, OrientationLandscape, out.Orientation())
	})

	t.Run("wrapped names draw every line", func(t *testing.T) {
		doc, err := renderer.Render(tpl.Bytes(), style, PreviewNames[1], 589, 300)
		require.NoError(t, err)
		assert.True(t, containsText(t, doc, "Participant's Name That Is Long"))
		assert.True(t, containsText(t, doc, "Outline"))
	})

	t.Run("zero size draws nothing", func(t *testing.T) {
		doc, err := renderer.Render(tpl.Bytes(), Style{Font: Helvetica, Size: 0}, "Ada Lovelace", 589, 300)
		require.NoError(t, err)
		assert.Equal(t, 1, pageCount(t, doc))
		assert.False(t, containsText(t, doc, "Ada Lovelace"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		for _, text := range []string{"Grace Hopper", PreviewNames[1]} {
			first, err := renderer.Render(tpl.Bytes(), style, text, 589, 300)
			require.NoError(t, err)
			for i := 0; i < 10; i++ {
				next, err := renderer.Render(tpl.Bytes(), style, text, 589, 300)
				require.NoError(t, err)
				require.True(t, bytes.Equal(first, next), "render %d of %q differs", i, text)
			}
		}
	})

	t.Run("percent signs are drawn as given", func(t *testing.T) {
		doc, err := renderer.Render(tpl.Bytes(), style, "100% Club %%x", 589, 300)
		require.NoError(t, err)
		assert.True(t, containsText(t, doc, "100% Club %%x"))
	})

	t.Run("stamp placeholders are rejected", func(t *testing.T) {
		_, err := renderer.Render(tpl.Bytes(), style, "Page %p", 589, 300)
		var placeholderErr *PlaceholderError
		require.ErrorAs(t, err, &placeholderErr)
		assert.Equal(t, "%p", placeholderErr.Sequence)
		assert.ErrorIs(t, err, ErrPlaceholder)
	})

	t.Run("leaves the template untouched", func(t *testing.T) {
		before := tpl.Bytes()
		_, err := renderer.Render(before, style, "Grace Hopper", 589, 300)
		require.NoError(t, err)
		assert.Equal(t, tpl.Bytes(), before)
	})

	t.Run("unencodable names fail", func(t *testing.T) {
		_, err := renderer.Render(tpl.Bytes(), style, "Łukasz", 589, 300)
		assert.ErrorIs(t, err, ErrMeasurement)
	})

	t.Run("corrupt templates fail", func(t *testing.T) {
		_, err := renderer.Render([]byte("%PDF-1.4 broken"), style, "Ada", 589, 300)
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestRenderIsolation(t *testing.T) {
	layout := testLayout(t, portraitTemplate(t))
	renderer := NewRenderer(nil)

	names := []string{"Alice", "Bob"}
	docs := make([][]byte, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for j, name := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doc, err := renderer.RenderLayout(layout, name)
				if i == 0 {
					docs[j], errs[j] = doc, err
				}
			}()
		}
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	assert.True(t, containsText(t, docs[0], "Alice"))
	assert.False(t, containsText(t, docs[0], "Bob"))
	assert.True(t, containsText(t, docs[1], "Bob"))
	assert.False(t, containsText(t, docs[1], "Alice"))
}
