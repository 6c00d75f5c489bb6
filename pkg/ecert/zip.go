package ecert

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	ArchiveFileName   = "certificates.zip"
	PreviewFileName   = "name2ecert-preview.pdf"
	certificateSuffix = "-certificate.pdf"
)

type ArchiveEntry struct {
	Name      string
	Recipient string
	Data      []byte
}

// Archive holds a finished batch in recipient order.
type Archive struct {
	Entries []ArchiveEntry
	// Only populated under SkipFailed.
	Failures []*RenderError
}

var entryNameReplacer = strings.NewReplacer("/", "_", "\\", "_")

// EntryName returns the archive entry name for a recipient.
func EntryName(name string) string {
	return entryNameReplacer.Replace(name) + certificateSuffix
}

// entryNames derives entry names for names in order, numbering repeats from _2.
func entryNames(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	taken := make(map[string]bool, len(names))

	for i, name := range names {
		base := entryNameReplacer.Replace(name)
		candidate := base
		for taken[candidate] {
			seen[base]++
			candidate = fmt.Sprintf("%s_%d", base, seen[base]+1)
		}
		taken[candidate] = true
		out[i] = candidate + certificateSuffix
	}

	return out
}

func (a *Archive) Names() []string {
	names := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		names[i] = e.Name
	}
	return names
}

func (a *Archive) FailedRecipients() []string {
	names := make([]string, len(a.Failures))
	for i, f := range a.Failures {
		names[i] = f.Name
	}
	return names
}

func (a *Archive) WriteZip(w io.Writer) error {
	archive := zip.NewWriter(w)

	for _, entry := range a.Entries {
		header := &zip.FileHeader{
			Name:   entry.Name,
			Method: zip.Deflate,
		}

		writer, err := archive.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", entry.Name, err)
		}

		if _, err := writer.Write(entry.Data); err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", entry.Name, err)
		}
	}

	return archive.Close()
}

func (a *Archive) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.WriteZip(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
