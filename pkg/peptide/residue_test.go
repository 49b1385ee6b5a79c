package peptide

import (
	"testing"

	"github.com/peptikit/peptigraph/pkg/errors"
)

func TestFromCode1(t *testing.T) {
	tests := []struct {
		code byte
		want Residue
	}{
		{code: 'A', want: Ala},
		{code: 'R', want: Arg},
		{code: 'N', want: Asn},
		{code: 'D', want: Asp},
		{code: 'C', want: Cys},
		{code: 'Q', want: Gln},
		{code: 'E', want: Glu},
		{code: 'G', want: Gly},
		{code: 'H', want: His},
		{code: 'I', want: Ile},
		{code: 'L', want: Leu},
		{code: 'K', want: Lys},
		{code: 'M', want: Met},
		{code: 'F', want: Phe},
		{code: 'P', want: Pro},
		{code: 'S', want: Ser},
		{code: 'T', want: Thr},
		{code: 'W', want: Trp},
		{code: 'Y', want: Tyr},
		{code: 'V', want: Val},
		{code: 'U', want: Sec},
		{code: 'O', want: Pyl},
	}

	for _, tt := range tests {
		got, err := FromCode1(tt.code)
		if err != nil {
			t.Errorf("FromCode1(%q) error: %v", string(tt.code), err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromCode1(%q) = %v, want %v", string(tt.code), got, tt.want)
		}
	}
}

func TestFromCode1Unknown(t *testing.T) {
	for _, c := range []byte{'X', 'Z', 'a', '1', ' '} {
		_, err := FromCode1(c)
		if !errors.Is(err, errors.ErrCodeUnknownResidue) {
			t.Errorf("FromCode1(%q) error = %v, want %v", string(c), err, errors.ErrCodeUnknownResidue)
		}
	}
}

func TestFromCode3(t *testing.T) {
	got, err := FromCode3("Thr")
	if err != nil {
		t.Fatalf("FromCode3(Thr) error: %v", err)
	}
	if got != Thr {
		t.Errorf("FromCode3(Thr) = %v, want %v", got, Thr)
	}

	// The dehydro residues are reachable only by three-letter code.
	for code, want := range map[string]Residue{"Dha": Dha, "Dhb": Dhb, "Sec": Sec, "Pyl": Pyl} {
		got, err := FromCode3(code)
		if err != nil {
			t.Errorf("FromCode3(%q) error: %v", code, err)
			continue
		}
		if got != want {
			t.Errorf("FromCode3(%q) = %v, want %v", code, got, want)
		}
	}

	if _, err := FromCode3("Xyz"); !errors.Is(err, errors.ErrCodeUnknownResidue) {
		t.Errorf("FromCode3(Xyz) error = %v, want %v", err, errors.ErrCodeUnknownResidue)
	}
}

func TestCode3RoundTrip(t *testing.T) {
	for r := Residue(0); r < residueCount; r++ {
		got, err := FromCode3(r.String())
		if err != nil {
			t.Errorf("FromCode3(%s) error: %v", r, err)
			continue
		}
		if got != r {
			t.Errorf("FromCode3(%s) = %v, want %v", r, got, r)
		}
	}
}

func TestCode1RoundTrip(t *testing.T) {
	oneLetterCount := 0
	for r := Residue(0); r < residueCount; r++ {
		c, ok := r.Code1()
		if !ok {
			if r != Dha && r != Dhb {
				t.Errorf("%s has no one-letter code", r)
			}
			continue
		}
		oneLetterCount++
		got, err := FromCode1(c)
		if err != nil {
			t.Errorf("FromCode1(%q) error: %v", string(c), err)
			continue
		}
		if got != r {
			t.Errorf("FromCode1(%q) = %v, want %v", string(c), got, r)
		}
	}
	if oneLetterCount != 22 {
		t.Errorf("one-letter-addressable residues = %d, want 22", oneLetterCount)
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("AGCW")
	if err != nil {
		t.Fatalf("ParseSequence error: %v", err)
	}
	want := []Residue{Ala, Gly, Cys, Trp}
	if len(seq) != len(want) {
		t.Fatalf("len = %d, want %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want[i])
		}
	}

	if _, err := ParseSequence("AGXW"); !errors.Is(err, errors.ErrCodeInvalidSequence) {
		t.Errorf("ParseSequence(AGXW) error = %v, want %v", err, errors.ErrCodeInvalidSequence)
	}
	if _, err := ParseSequence(""); !errors.Is(err, errors.ErrCodeInvalidSequence) {
		t.Errorf("ParseSequence(empty) error = %v, want %v", err, errors.ErrCodeInvalidSequence)
	}
}

func TestParseSequence3(t *testing.T) {
	seq, err := ParseSequence3("Ala-Gly-Dhb")
	if err != nil {
		t.Fatalf("ParseSequence3 error: %v", err)
	}
	want := []Residue{Ala, Gly, Dhb}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want[i])
		}
	}

	// Whitespace separators are accepted too.
	seq, err = ParseSequence3("Cys Thr")
	if err != nil {
		t.Fatalf("ParseSequence3 error: %v", err)
	}
	if len(seq) != 2 || seq[0] != Cys || seq[1] != Thr {
		t.Errorf("ParseSequence3(\"Cys Thr\") = %v", seq)
	}

	if _, err := ParseSequence3("Ala-Xyz"); !errors.Is(err, errors.ErrCodeInvalidSequence) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidSequence)
	}
}
