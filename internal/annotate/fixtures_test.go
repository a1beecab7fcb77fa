package annotate

import (
	"strings"
	"testing"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// utr3WithStops is the default 3'UTR of the coding fixture: it carries a
// stop codon in each of the three reading frames so frameshifts terminate.
const utr3WithStops = "TAAATAAATAAA"

// codingModel builds the standard forward-strand fixture used across the
// annotation tests: three exons on chromosome 1, a 198-base CDS whose
// protein reads Met Cys (Gly x63) Stop, and the given 3'UTR head.
//
//	exons   [100,200) [300,400) [500,600)
//	CDS     [150,548)
//	protein M C GGG...G *   (66 residues)
func codingModel(t *testing.T, utr3 string) *transcript.Model {
	t.Helper()
	utr3 += strings.Repeat("A", 52-len(utr3))
	seq := strings.Repeat("A", 50) +
		"ATG" + "TGC" + strings.Repeat("GGC", 63) + "TAA" +
		utr3
	tm, err := transcript.New("TX1.1", "GENE1", "1", genome.StrandFwd,
		[]genome.Interval{
			{Chrom: "1", Begin: 100, End: 200},
			{Chrom: "1", Begin: 300, End: 400},
			{Chrom: "1", Begin: 500, End: 600},
		},
		genome.Interval{Chrom: "1", Begin: 150, End: 548},
		seq)
	if err != nil {
		t.Fatalf("building coding fixture: %v", err)
	}
	return tm
}

// revCodingModel builds the reverse-strand counterpart of codingModel: one
// exon, same protein (Met Cys Gly x63 Stop), sequence given in transcript
// orientation.
//
//	exon    [100,400)   strand -
//	CDS     [150,348)   c.1 at genomic 347
func revCodingModel(t *testing.T) *transcript.Model {
	t.Helper()
	seq := strings.Repeat("A", 52) +
		"ATG" + "TGC" + strings.Repeat("GGC", 63) + "TAA" +
		utr3WithStops + strings.Repeat("A", 38)
	tm, err := transcript.New("TX2.1", "GENE2", "1", genome.StrandRev,
		[]genome.Interval{{Chrom: "1", Begin: 100, End: 400}},
		genome.Interval{Chrom: "1", Begin: 150, End: 348},
		seq)
	if err != nil {
		t.Fatalf("building reverse coding fixture: %v", err)
	}
	return tm
}

// nonCodingModel builds a single-exon non-coding fixture.
func nonCodingModel(t *testing.T) *transcript.Model {
	t.Helper()
	tm, err := transcript.New("NC1.1", "LNC1", "1", genome.StrandFwd,
		[]genome.Interval{{Chrom: "1", Begin: 100, End: 200}},
		genome.Interval{}, strings.Repeat("A", 100))
	if err != nil {
		t.Fatalf("building non-coding fixture: %v", err)
	}
	return tm
}

func snv(pos int64, ref, alt string) genome.Variant {
	return genome.NewVariant("1", pos, genome.ZeroBased, ref, alt)
}

func hasEffect(t *testing.T, ann Annotation, e VariantEffect) {
	t.Helper()
	if !containsEffect(ann.Effects, e) {
		t.Errorf("effects %v do not contain %s", ann.Effects, e)
	}
}

func lacksEffect(t *testing.T, ann Annotation, e VariantEffect) {
	t.Helper()
	if containsEffect(ann.Effects, e) {
		t.Errorf("effects %v must not contain %s", ann.Effects, e)
	}
}
