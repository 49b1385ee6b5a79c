package fasta

import (
	"strings"
	"testing"

	"github.com/peptikit/peptigraph/pkg/errors"
)

func TestParse(t *testing.T) {
	input := `>sp|P01308|INS_HUMAN preview
MALWMRLLPL
LALLALWGPD

>second
GIVEQ
`
	records, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Header != "sp|P01308|INS_HUMAN preview" {
		t.Errorf("header = %q", records[0].Header)
	}
	if records[0].Sequence != "MALWMRLLPLLALLALWGPD" {
		t.Errorf("sequence = %q, want concatenated lines", records[0].Sequence)
	}
	if records[1].Sequence != "GIVEQ" {
		t.Errorf("second sequence = %q", records[1].Sequence)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "data before header", input: "GIVEQ\n>late\nAC\n"},
		{name: "header without sequence", input: ">empty\n>next\nAC\n"},
		{name: "trailing empty record", input: ">only\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
				t.Errorf("code = %v, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestParseOne(t *testing.T) {
	rec, err := ParseOne(strings.NewReader(">one\nGG\n"))
	if err != nil {
		t.Fatalf("ParseOne error: %v", err)
	}
	if rec.Sequence != "GG" {
		t.Errorf("sequence = %q, want GG", rec.Sequence)
	}

	if _, err := ParseOne(strings.NewReader("")); err == nil {
		t.Error("expected error on empty input")
	}
	if _, err := ParseOne(strings.NewReader(">a\nG\n>b\nG\n")); err == nil {
		t.Error("expected error on multiple records")
	}
}
