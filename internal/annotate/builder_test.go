package annotate

import (
	"errors"
	"testing"

	"github.com/varannot/varannot/internal/genome"
)

func TestBuildIntergenic(t *testing.T) {
	ann := Build(nil, snv(100, "C", "T"))

	hasEffect(t, ann, EffectIntergenic)
	if ann.Transcript != nil {
		t.Error("intergenic annotation must have no transcript")
	}
	if ann.Location != nil {
		t.Error("intergenic annotation must have no location")
	}
	if ann.NucleotideHGVS != "g.101C>T" {
		t.Errorf("NucleotideHGVS = %q, want g.101C>T", ann.NucleotideHGVS)
	}
	if ann.Impact() != "MODIFIER" {
		t.Errorf("Impact = %q, want MODIFIER", ann.Impact())
	}
}

func TestBuildTranscriptAblation(t *testing.T) {
	tm := codingModel(t, utr3WithStops)
	v := genome.NewVariant("1", 90, genome.ZeroBased, mkRef(560), "")

	ann := Build(tm, v)
	hasEffect(t, ann, EffectTranscriptAblation)
	if ann.ProteinHGVS != "" {
		t.Errorf("ablation must carry no protein change, got %q", ann.ProteinHGVS)
	}
	if ann.Impact() != "HIGH" {
		t.Errorf("Impact = %q, want HIGH", ann.Impact())
	}
}

// mkRef builds a placeholder reference allele of the given length.
func mkRef(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'A'
	}
	return string(b)
}

func TestBuildStartLost(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	ann := Build(tm, snv(151, "T", "C"))
	hasEffect(t, ann, EffectStartLost)
	if ann.ProteinHGVS != "p.0?" {
		t.Errorf("ProteinHGVS = %q, want p.0?", ann.ProteinHGVS)
	}
}

func TestBuildUTR(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	five := Build(tm, snv(120, "A", "G"))
	hasEffect(t, five, EffectFivePrimeUTR)
	if five.ProteinHGVS != "" {
		t.Error("UTR variant must carry no protein change")
	}
	if five.Location == nil || five.Location.Type != LocationExon || five.Location.Rank != 0 {
		t.Errorf("5'UTR location = %+v, want exon rank 0", five.Location)
	}

	three := Build(tm, snv(560, "A", "G"))
	hasEffect(t, three, EffectThreePrimeUTR)
	if three.Location == nil || three.Location.Rank != 2 || three.Location.Total != 3 {
		t.Errorf("3'UTR location = %+v, want exon rank 2 of 3", three.Location)
	}
}

func TestBuildIntronic(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	deep := Build(tm, snv(250, "A", "G"))
	hasEffect(t, deep, EffectCodingIntron)
	lacksEffect(t, deep, EffectSpliceDonor)
	if deep.Location == nil || deep.Location.Type != LocationIntron ||
		deep.Location.Rank != 0 || deep.Location.Total != 2 {
		t.Errorf("location = %+v, want intron rank 0 of 2", deep.Location)
	}

	donor := Build(tm, snv(200, "A", "G"))
	hasEffect(t, donor, EffectSpliceDonor)
	hasEffect(t, donor, EffectCodingIntron)
	if donor.Impact() != "HIGH" {
		t.Errorf("splice donor impact = %q, want HIGH", donor.Impact())
	}

	acceptor := Build(tm, snv(299, "A", "G"))
	hasEffect(t, acceptor, EffectSpliceAcceptor)

	region := Build(tm, snv(205, "A", "G"))
	hasEffect(t, region, EffectSpliceRegion)
	lacksEffect(t, region, EffectSpliceDonor)
}

func TestBuildFlanking(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	up := Build(tm, snv(50, "A", "G"))
	hasEffect(t, up, EffectUpstream)
	if up.Location != nil {
		t.Error("flanking variant must have no exon/intron location")
	}
	if up.NucleotideHGVS != "g.51A>G" {
		t.Errorf("NucleotideHGVS = %q, want g.51A>G", up.NucleotideHGVS)
	}

	down := Build(tm, snv(650, "A", "G"))
	hasEffect(t, down, EffectDownstream)

	// Beyond the flank the transcript does not apply at all.
	far := Build(tm, snv(5000, "A", "G"))
	hasEffect(t, far, EffectIntergenic)
}

func TestBuildNonCodingTranscript(t *testing.T) {
	tm := nonCodingModel(t)

	exonic := Build(tm, snv(150, "A", "G"))
	hasEffect(t, exonic, EffectNonCodingExon)
	if exonic.NucleotideHGVS != "n.51A>G" {
		t.Errorf("NucleotideHGVS = %q, want n.51A>G", exonic.NucleotideHGVS)
	}
	if exonic.ProteinHGVS != "" {
		t.Error("non-coding transcript must carry no protein change")
	}
}

func TestBuildBlockSubstitutionShapeCheck(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	if _, err := BuildBlockSubstitution(tm, snv(155, "C", "")); !errors.Is(err, ErrInvalidVariantShape) {
		t.Errorf("empty alt: got %v, want ErrInvalidVariantShape", err)
	}
	if _, err := BuildBlockSubstitution(tm, genome.NewVariant("1", 155, genome.ZeroBased, "", "TT")); !errors.Is(err, ErrInvalidVariantShape) {
		t.Errorf("empty ref: got %v, want ErrInvalidVariantShape", err)
	}

	ann, err := BuildBlockSubstitution(tm, genome.NewVariant("1", 153, genome.ZeroBased, "TGC", "AA"))
	if err != nil {
		t.Fatalf("valid block substitution: %v", err)
	}
	if ann.NucleotideHGVS != "c.4_6delinsAA" {
		t.Errorf("NucleotideHGVS = %q, want c.4_6delinsAA", ann.NucleotideHGVS)
	}
}

func TestLocationSpanningBoundary(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	// A deletion crossing an exon/intron boundary has no single rank.
	v := genome.NewVariant("1", 195, genome.ZeroBased, mkRef(10), "")
	ann := Build(tm, v)
	if ann.Location == nil || ann.Location.Rank != InvalidRank {
		t.Errorf("location = %+v, want InvalidRank", ann.Location)
	}
}

func TestBuildUTRJunctionInsertion(t *testing.T) {
	tm := codingModel(t, utr3WithStops)

	// Insertion point exactly at the CDS begin: between c.-1 and c.1.
	ann := Build(tm, genome.NewVariant("1", 150, genome.ZeroBased, "", "TT"))
	hasEffect(t, ann, EffectFivePrimeUTR)
	lacksEffect(t, ann, EffectIntergenic)
	if ann.Transcript == nil {
		t.Fatal("junction insertion must keep its transcript")
	}
	if ann.NucleotideHGVS != "c.-1_1insTT" {
		t.Errorf("NucleotideHGVS = %q, want c.-1_1insTT", ann.NucleotideHGVS)
	}
	if ann.Location == nil || ann.Location.Rank != 0 {
		t.Errorf("location = %+v, want exon rank 0", ann.Location)
	}
}

func TestBuildUTRJunctionInsertionReverse(t *testing.T) {
	tm := revCodingModel(t)

	// On the reverse strand the genomic CDS begin is the CDS/3'UTR junction.
	ann := Build(tm, genome.NewVariant("1", 150, genome.ZeroBased, "", "AA"))
	hasEffect(t, ann, EffectThreePrimeUTR)
	if ann.Transcript == nil {
		t.Fatal("junction insertion must keep its transcript")
	}
	if ann.NucleotideHGVS != "c.198_199insTT" {
		t.Errorf("NucleotideHGVS = %q, want c.198_199insTT", ann.NucleotideHGVS)
	}
}
