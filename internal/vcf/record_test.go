package vcf

import (
	"testing"

	"github.com/varannot/varannot/internal/genome"
)

func TestToVariant(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		chrom   string
		begin   int64
		ref     string
		alt     string
	}{
		{
			name:  "snv",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "A", Alt: "T"},
			chrom: "1", begin: 99, ref: "A", alt: "T",
		},
		{
			name:  "chr prefix stripped",
			rec:   Record{Chrom: "chr1", Pos: 100, Ref: "A", Alt: "T"},
			chrom: "1", begin: 99, ref: "A", alt: "T",
		},
		{
			name:  "lowercase uppercased",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "a", Alt: "t"},
			chrom: "1", begin: 99, ref: "A", alt: "T",
		},
		{
			name:  "anchored deletion",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "TA", Alt: "T"},
			chrom: "1", begin: 100, ref: "A", alt: "",
		},
		{
			name:  "anchored insertion",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "T", Alt: "TAG"},
			chrom: "1", begin: 100, ref: "", alt: "AG",
		},
		{
			name:  "suffix then prefix trim",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "CTTT", Alt: "CTT"},
			chrom: "1", begin: 100, ref: "T", alt: "",
		},
		{
			name:  "block substitution untouched",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "TGC", Alt: "AGT"},
			chrom: "1", begin: 99, ref: "TGC", alt: "AGT",
		},
		{
			name:  "mnv with shared anchor",
			rec:   Record{Chrom: "1", Pos: 100, Ref: "ATG", Alt: "ACC"},
			chrom: "1", begin: 100, ref: "TG", alt: "CC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.rec.ToVariant()
			want := genome.Variant{Chrom: tt.chrom, Begin: tt.begin, Ref: tt.ref, Alt: tt.alt, Strand: genome.StrandFwd}
			if v != want {
				t.Errorf("ToVariant() = %+v, want %+v", v, want)
			}
		})
	}
}

func TestSplitMultiAllelic(t *testing.T) {
	r := &Record{Chrom: "1", Pos: 100, Ref: "A", Alt: "T,G,C"}

	records := SplitMultiAllelic(r)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, alt := range []string{"T", "G", "C"} {
		if records[i].Alt != alt {
			t.Errorf("record %d alt = %q, want %q", i, records[i].Alt, alt)
		}
		if records[i].Pos != 100 || records[i].Ref != "A" {
			t.Errorf("record %d lost anchor fields: %+v", i, records[i])
		}
	}

	single := &Record{Chrom: "1", Pos: 100, Ref: "A", Alt: "T"}
	if got := SplitMultiAllelic(single); len(got) != 1 || got[0] != single {
		t.Error("bi-allelic record must pass through unchanged")
	}
}
