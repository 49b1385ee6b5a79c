// Package fasta parses FASTA formatted sequence data. Parsing is
// deliberately conservative: headers start with '>', sequence lines are
// concatenated verbatim, and blank lines between records are ignored.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/peptikit/peptigraph/pkg/errors"
)

// Record is a single FASTA entry: the header text after '>' and the
// concatenated sequence.
type Record struct {
	Header   string
	Sequence string
}

// Parse reads FASTA records from r. A record without a header (sequence
// data before the first '>') is rejected, as is a header with no
// sequence lines.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	var current *Record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, ">") {
			if current != nil {
				if current.Sequence == "" {
					return nil, errors.New(errors.ErrCodeInvalidFormat, "record %q has no sequence", current.Header)
				}
				records = append(records, *current)
			}
			current = &Record{Header: strings.TrimSpace(text[1:])}
			continue
		}
		if current == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: sequence data before first header", line)
		}
		current.Sequence += text
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading FASTA stream")
	}
	if current != nil {
		if current.Sequence == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "record %q has no sequence", current.Header)
		}
		records = append(records, *current)
	}
	return records, nil
}

// ParseOne reads exactly one record from r and rejects inputs with zero
// or multiple entries.
func ParseOne(r io.Reader) (Record, error) {
	records, err := Parse(r)
	if err != nil {
		return Record{}, err
	}
	switch len(records) {
	case 0:
		return Record{}, errors.New(errors.ErrCodeInvalidFormat, "no FASTA records found")
	case 1:
		return records[0], nil
	default:
		return Record{}, errors.New(errors.ErrCodeInvalidFormat, "expected a single FASTA record, found %d", len(records))
	}
}
