package ecert

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/require"
)

const (
	a4Long  = 842.0
	a4Short = 596.0
)

// newTemplatePDF builds a document with the given page size in points.
func newTemplatePDF(t *testing.T, width, height float64, pages int) []byte {
	t.Helper()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetFont("Helvetica", "", 18)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Text(40, 60, "Certificate of Completion")
	}

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

func landscapeTemplate(t *testing.T) *Template {
	t.Helper()

	tpl, err := LoadTemplate(newTemplatePDF(t, a4Long, a4Short, 1), nil)
	require.NoError(t, err)
	return tpl
}

func portraitTemplate(t *testing.T) *Template {
	t.Helper()

	tpl, err := LoadTemplate(newTemplatePDF(t, a4Short, a4Long, 1), nil)
	require.NoError(t, err)
	return tpl
}

func testLayout(t *testing.T, tpl *Template) *Layout {
	t.Helper()

	layout, err := NewLayout(tpl, DefaultStyle(), Anchor{Y: 300, PreviewHeight: 595, Orientation: tpl.Orientation()})
	require.NoError(t, err)
	return layout
}

// pageCount decodes doc and returns its number of pages.
func pageCount(t *testing.T, doc []byte) int {
	t.Helper()

	ctx, err := decode(doc, NewDefaultConfig().PDFConfiguration())
	require.NoError(t, err)
	return ctx.PageCount
}

// streamContents returns the decoded content of every stream object in doc.
func streamContents(t *testing.T, doc []byte) [][]byte {
	t.Helper()

	ctx, err := decode(doc, NewDefaultConfig().PDFConfiguration())
	require.NoError(t, err)

	var contents [][]byte
	for _, entry := range ctx.XRefTable.Table {
		if entry == nil || entry.Object == nil {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if err := sd.Decode(); err != nil {
			continue
		}
		contents = append(contents, sd.Content)
	}
	return contents
}

// containsText reports whether any stream draws s as a literal or hex string.
func containsText(t *testing.T, doc []byte, s string) bool {
	t.Helper()

	hexLower := hex.EncodeToString([]byte(s))
	hexUpper := strings.ToUpper(hexLower)

	for _, content := range streamContents(t, doc) {
		if bytes.Contains(content, []byte(s)) ||
			bytes.Contains(content, []byte(hexLower)) ||
			bytes.Contains(content, []byte(hexUpper)) {
			return true
		}
	}
	return false
}
