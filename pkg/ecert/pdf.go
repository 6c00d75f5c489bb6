package ecert

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// decode parses an owned working copy of a document. The input slice is only read.
func decode(data []byte, conf *model.Configuration) (*model.Context, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: fmt.Errorf("document is empty")}
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return ctx, nil
}

// pageSize returns the media box size of a page in points.
func pageSize(ctx *model.Context, page int) (float64, float64, error) {
	_, _, inh, err := ctx.PageDict(page, false)
	if err != nil {
		return 0, 0, &DecodeError{Err: err}
	}

	if inh == nil || inh.MediaBox == nil {
		return 0, 0, &DecodeError{Err: fmt.Errorf("page %d has no media box", page)}
	}

	return inh.MediaBox.Width(), inh.MediaBox.Height(), nil
}

// mergeDocuments concatenates the pages of docs in order.
func mergeDocuments(docs [][]byte, conf *model.Configuration) ([]byte, error) {
	if len(docs) == 1 {
		return docs[0], nil
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		readers[i] = bytes.NewReader(doc)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, conf); err != nil {
		return nil, fmt.Errorf("failed to merge documents: %w", err)
	}

	return out.Bytes(), nil
}

var (
	volatileDate = regexp.MustCompile(`/(?:CreationDate|ModDate)\s*\(D:[^)]*\)`)
	volatileID   = regexp.MustCompile(`/ID\s*\[\s*<[0-9A-Fa-f]*>\s*<[0-9A-Fa-f]*>\s*\]`)
	hexDigit     = regexp.MustCompile(`[0-9A-Fa-f]`)
)

// fixedDate is the date every normalized timestamp is rewritten to, digit by digit.
const fixedDate = "19700101000000"

// NormalizeMetadata pins the file identifier and the info dictionary timestamps, which
// change on every write. Replacements keep their length so xref offsets stay valid.
func NormalizeMetadata(doc []byte) []byte {
	out := bytes.Clone(doc)
	out = volatileDate.ReplaceAllFunc(out, func(m []byte) []byte {
		i := bytes.Index(m, []byte("(D:")) + 3
		date := bytes.Clone(m[i:])
		digits := 0
		for j, c := range date {
			if c < '0' || c > '9' {
				continue
			}
			if digits < len(fixedDate) {
				date[j] = fixedDate[digits]
			} else {
				date[j] = '0'
			}
			digits++
		}
		return append(m[:i:i], date...)
	})
	out = volatileID.ReplaceAllFunc(out, func(m []byte) []byte {
		return append([]byte("/ID"), hexDigit.ReplaceAll(m[3:], []byte("0"))...)
	})
	return out
}

type xrefEntry struct {
	objNr  int
	offset int
	// position of the entry line in the document
	pos int
}

// sortObjects rewrites a document written with a plain xref table so its indirect objects
// appear in object number order. pdfcpu emits objects in map iteration order, so two writes
// of the same context differ only in object placement; sorting removes that difference.
// Object lengths are unchanged, so the xref table stays where it was and only its in-use
// offsets are rewritten.
func sortObjects(doc []byte) ([]byte, error) {
	startxref := bytes.LastIndex(doc, []byte("startxref"))
	if startxref < 0 {
		return nil, fmt.Errorf("document has no startxref")
	}

	fields := bytes.Fields(doc[startxref+len("startxref"):])
	if len(fields) == 0 {
		return nil, fmt.Errorf("document has no xref offset")
	}
	xref, err := strconv.Atoi(string(fields[0]))
	if err != nil || xref <= 0 || xref >= startxref || !bytes.HasPrefix(doc[xref:], []byte("xref")) {
		return nil, fmt.Errorf("document has no plain xref table at %q", fields[0])
	}

	trailer := bytes.Index(doc[xref:], []byte("trailer"))
	if trailer < 0 {
		return nil, fmt.Errorf("document has no trailer")
	}
	trailer += xref

	entries, err := parseXRefTable(doc, xref+len("xref"), trailer)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return bytes.Clone(doc), nil
	}

	// An object runs from its offset to the start of the next object in file order.
	byOffset := slices.Clone(entries)
	slices.SortFunc(byOffset, func(a, b xrefEntry) int { return a.offset - b.offset })
	if byOffset[0].offset <= 0 {
		return nil, fmt.Errorf("object %d has invalid offset %d", byOffset[0].objNr, byOffset[0].offset)
	}
	ends := make(map[int]int, len(byOffset))
	for i, e := range byOffset {
		end := xref
		if i+1 < len(byOffset) {
			end = byOffset[i+1].offset
		}
		if end <= e.offset {
			return nil, fmt.Errorf("object %d overlaps the next object", e.objNr)
		}
		ends[e.objNr] = end
	}

	out := make([]byte, 0, len(doc))
	out = append(out, doc[:byOffset[0].offset]...)

	byNumber := slices.Clone(entries)
	slices.SortFunc(byNumber, func(a, b xrefEntry) int { return a.objNr - b.objNr })
	offsets := make(map[int]int, len(byNumber))
	for _, e := range byNumber {
		offsets[e.objNr] = len(out)
		out = append(out, doc[e.offset:ends[e.objNr]]...)
	}

	out = append(out, doc[xref:]...)
	for _, e := range entries {
		copy(out[e.pos:e.pos+10], fmt.Sprintf("%010d", offsets[e.objNr]))
	}

	return out, nil
}

// parseXRefTable returns the in-use entries of the xref subsections in doc[from:to].
func parseXRefTable(doc []byte, from, to int) ([]xrefEntry, error) {
	var (
		entries []xrefEntry
		objNr   int
	)

	for pos := from; pos < to; {
		end := bytes.IndexByte(doc[pos:to], '\n')
		if end < 0 {
			end = to
		} else {
			end += pos
		}
		line := doc[pos:end]
		lineStart := pos + len(line) - len(bytes.TrimLeft(line, " \r"))
		pos = end + 1

		fields := bytes.Fields(line)
		switch len(fields) {
		case 0:
		case 2:
			start, err := strconv.Atoi(string(fields[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid xref subsection %q", line)
			}
			objNr = start
		case 3:
			if string(fields[2]) == "n" {
				offset, err := strconv.Atoi(string(fields[0]))
				if err != nil || len(fields[0]) != 10 {
					return nil, fmt.Errorf("invalid xref entry %q", line)
				}
				entries = append(entries, xrefEntry{objNr: objNr, offset: offset, pos: lineStart})
			}
			objNr++
		default:
			return nil, fmt.Errorf("invalid xref line %q", line)
		}
	}

	return entries, nil
}

// normalizeDocument makes a freshly written document byte-for-byte reproducible.
func normalizeDocument(doc []byte) ([]byte, error) {
	sorted, err := sortObjects(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	return NormalizeMetadata(sorted), nil
}
