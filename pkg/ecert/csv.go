package ecert

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const nameHeader = "name"

type Recipient struct {
	Name string `json:"name"`
}

// RecipientList is the ordered set of names a batch renders. It is never mutated once
// built.
type RecipientList struct {
	Recipients []Recipient `json:"recipients"`
}

func (l *RecipientList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Recipients)
}

// NewRecipientList builds a list in argument order. Names are trimmed and must not be
// blank.
func NewRecipientList(names ...string) (*RecipientList, error) {
	list := &RecipientList{Recipients: make([]Recipient, 0, len(names))}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("recipient %d has an empty name", i+1)
		}
		list.Recipients = append(list.Recipients, Recipient{Name: name})
	}
	return list, nil
}

// ReadRecipients parses a CSV whose first header column is exactly "name". Other columns
// are ignored and rows with a blank name are skipped.
func ReadRecipients(r io.Reader) (*RecipientList, error) {
	br := bufio.NewReader(r)

	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	bom, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read recipient list: %w", err)
	}
	if len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	// The header is compared as written; leading space is only trimmed from records.
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &HeaderMismatchError{}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	if header[0] != nameHeader {
		return nil, &HeaderMismatchError{Got: header[0]}
	}
	reader.TrimLeadingSpace = true

	list := &RecipientList{Recipients: []Recipient{}}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("row %d: name is not valid UTF-8", row)
		}
		list.Recipients = append(list.Recipients, Recipient{Name: name})
	}

	return list, nil
}
