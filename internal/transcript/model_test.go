package transcript

import (
	"errors"
	"strings"
	"testing"

	"github.com/varannot/varannot/internal/genome"
)

// testModel builds the standard forward-strand coding fixture: three exons,
// a 198-base CDS starting 50 bases into the transcript, and a sequence whose
// coding region reads ATG TGC (GGC x63) TAA with an in-frame TGA just past
// the stop.
func testModel(t *testing.T) *Model {
	t.Helper()
	seq := strings.Repeat("A", 50) +
		"ATG" + "TGC" + strings.Repeat("GGC", 63) + "TAA" +
		"TGA" + strings.Repeat("A", 49)
	tm, err := New("TX1.1", "GENE1", "1", genome.StrandFwd,
		[]genome.Interval{
			{Chrom: "1", Begin: 100, End: 200},
			{Chrom: "1", Begin: 300, End: 400},
			{Chrom: "1", Begin: 500, End: 600},
		},
		genome.Interval{Chrom: "1", Begin: 150, End: 548},
		seq)
	if err != nil {
		t.Fatalf("building test model: %v", err)
	}
	return tm
}

// testModelRev builds a reverse-strand two-exon coding fixture without a
// sequence, for coordinate-only tests.
func testModelRev(t *testing.T) *Model {
	t.Helper()
	tm, err := New("TX2.1", "GENE2", "1", genome.StrandRev,
		[]genome.Interval{
			{Chrom: "1", Begin: 100, End: 200},
			{Chrom: "1", Begin: 300, End: 400},
		},
		genome.Interval{Chrom: "1", Begin: 150, End: 350},
		"")
	if err != nil {
		t.Fatalf("building reverse test model: %v", err)
	}
	return tm
}

func TestNewValidation(t *testing.T) {
	exons := []genome.Interval{{Chrom: "1", Begin: 100, End: 200}}

	tests := []struct {
		name  string
		build func() (*Model, error)
	}{
		{"no exons", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd, nil, genome.Interval{}, "")
		}},
		{"exon on wrong chromosome", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd,
				[]genome.Interval{{Chrom: "2", Begin: 100, End: 200}}, genome.Interval{}, "")
		}},
		{"unsorted exons", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd,
				[]genome.Interval{{Chrom: "1", Begin: 300, End: 400}, {Chrom: "1", Begin: 100, End: 200}},
				genome.Interval{}, "")
		}},
		{"overlapping exons", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd,
				[]genome.Interval{{Chrom: "1", Begin: 100, End: 200}, {Chrom: "1", Begin: 150, End: 250}},
				genome.Interval{}, "")
		}},
		{"CDS outside exon span", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd, exons,
				genome.Interval{Chrom: "1", Begin: 50, End: 150}, "")
		}},
		{"CDS boundary in intron", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd,
				[]genome.Interval{{Chrom: "1", Begin: 100, End: 200}, {Chrom: "1", Begin: 300, End: 400}},
				genome.Interval{Chrom: "1", Begin: 150, End: 250}, "")
		}},
		{"sequence length mismatch", func() (*Model, error) {
			return New("TX", "G", "1", genome.StrandFwd, exons, genome.Interval{}, "ACGT")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil {
				t.Fatal("expected a construction error")
			}
			if !errors.Is(err, ErrMalformedTranscript) {
				t.Errorf("error %v does not wrap ErrMalformedTranscript", err)
			}
		})
	}
}

func TestModelBasics(t *testing.T) {
	tm := testModel(t)

	if !tm.IsCoding() {
		t.Error("fixture transcript must be coding")
	}
	if tm.ExonCount() != 3 {
		t.Errorf("ExonCount = %d, want 3", tm.ExonCount())
	}
	if tm.ExonicLength() != 300 {
		t.Errorf("ExonicLength = %d, want 300", tm.ExonicLength())
	}
	tx := tm.TXRegion()
	if tx.Begin != 100 || tx.End != 600 {
		t.Errorf("TXRegion = %v, want [100,600)", tx)
	}
}

func TestExonIndexAt(t *testing.T) {
	tm := testModel(t)

	tests := []struct {
		pos  int64
		want int
	}{
		{100, 0},
		{199, 0},
		{300, 1},
		{599, 2},
		{250, -1}, // intronic
		{50, -1},  // upstream
		{700, -1}, // downstream
	}
	for _, tt := range tests {
		if got := tm.ExonIndexAt(tt.pos); got != tt.want {
			t.Errorf("ExonIndexAt(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestExonRank(t *testing.T) {
	fwd := testModel(t)
	if fwd.ExonRank(0) != 0 || fwd.ExonRank(2) != 2 {
		t.Error("forward strand ranks follow genomic order")
	}

	rev := testModelRev(t)
	if rev.ExonRank(0) != 1 {
		t.Errorf("reverse strand: genomic exon 0 is rank %d, want 1", rev.ExonRank(0))
	}
	if rev.ExonRank(1) != 0 {
		t.Errorf("reverse strand: genomic exon 1 is rank %d, want 0", rev.ExonRank(1))
	}
}
