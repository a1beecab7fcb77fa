package annotate

import "testing"

func TestTranslateCodon(t *testing.T) {
	tests := []struct {
		codon string
		want  byte
	}{
		{"ATG", 'M'},
		{"TGC", 'C'},
		{"GGC", 'G'},
		{"TAA", '*'},
		{"TAG", '*'},
		{"TGA", '*'},
		{"NNN", 'X'},
		{"AT", 'X'},
		{"", 'X'},
	}
	for _, tt := range tests {
		if got := TranslateCodon(tt.codon); got != tt.want {
			t.Errorf("TranslateCodon(%q) = %c, want %c", tt.codon, got, tt.want)
		}
	}
}

func TestIsStopCodon(t *testing.T) {
	for _, stop := range []string{"TAA", "TAG", "TGA"} {
		if !IsStopCodon(stop) {
			t.Errorf("%s must be a stop codon", stop)
		}
	}
	if IsStopCodon("TGG") {
		t.Error("TGG (Trp) is not a stop codon")
	}
}

func TestTranslateSequence(t *testing.T) {
	if got := TranslateSequence("ATGTGCGGCTAA"); got != "MCG*" {
		t.Errorf("TranslateSequence = %q, want MCG*", got)
	}
	// A trailing partial codon is ignored.
	if got := TranslateSequence("ATGTG"); got != "M" {
		t.Errorf("partial codon: got %q, want M", got)
	}
	if got := TranslateSequence(""); got != "" {
		t.Errorf("empty sequence: got %q", got)
	}
}

func TestToLong(t *testing.T) {
	tests := []struct {
		aa   byte
		want string
	}{
		{'M', "Met"},
		{'G', "Gly"},
		{'*', "*"}, // stop stays a literal star in change strings
		{'X', "Xaa"},
		{'?', "Xaa"},
	}
	for _, tt := range tests {
		if got := ToLong(tt.aa); got != tt.want {
			t.Errorf("ToLong(%c) = %q, want %q", tt.aa, got, tt.want)
		}
	}
}

func TestToLongSeq(t *testing.T) {
	if got := ToLongSeq("MC*"); got != "MetCys*" {
		t.Errorf("ToLongSeq = %q, want MetCys*", got)
	}
}
