package ecert

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryNames(t *testing.T) {
	assert.Equal(t, "Ada Lovelace-certificate.pdf", EntryName("Ada Lovelace"))
	assert.Equal(t, "AC_DC-certificate.pdf", EntryName("AC/DC"))
	assert.Equal(t, "a_b-certificate.pdf", EntryName(`a\b`))

	assert.Equal(t, []string{
		"Alice-certificate.pdf",
		"Bob-certificate.pdf",
		"Alice_2-certificate.pdf",
		"Alice_3-certificate.pdf",
	}, entryNames([]string{"Alice", "Bob", "Alice", "Alice"}))
}

func TestArchiveWriteZip(t *testing.T) {
	archive := &Archive{Entries: []ArchiveEntry{
		{Name: "Alice-certificate.pdf", Recipient: "Alice", Data: []byte("%PDF-alice")},
		{Name: "Bob-certificate.pdf", Recipient: "Bob", Data: []byte("%PDF-bob")},
	}}

	data, err := archive.Bytes()
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	for i, f := range reader.File {
		assert.Equal(t, archive.Entries[i].Name, f.Name)

		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, archive.Entries[i].Data, content)
	}

	assert.Equal(t, []string{"Alice-certificate.pdf", "Bob-certificate.pdf"}, archive.Names())
}
