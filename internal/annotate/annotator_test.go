package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

func fixtureAnnotator(t *testing.T) *Annotator {
	t.Helper()
	idx := transcript.NewIndex([]*transcript.Model{codingModel(t, utr3WithStops)}, transcript.DefaultFlankSize)
	return NewAnnotator(idx)
}

func TestAnnotateSingleTranscript(t *testing.T) {
	ann := fixtureAnnotator(t)

	anns, err := ann.Annotate(snv(154, "G", "C"))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Equal(t, "TX1.1", anns[0].Accession())
	assert.Equal(t, "GENE1", anns[0].GeneSymbol())
	assert.Contains(t, anns[0].Effects, EffectMissense)
}

func TestAnnotateIntergenicFallback(t *testing.T) {
	ann := fixtureAnnotator(t)

	anns, err := ann.Annotate(snv(500000, "A", "T"))
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Contains(t, anns[0].Effects, EffectIntergenic)
	assert.Nil(t, anns[0].Transcript)
}

func TestAnnotateInvalidVariants(t *testing.T) {
	ann := fixtureAnnotator(t)

	_, err := ann.Annotate(genome.Variant{Begin: 100, Ref: "A", Alt: "T"})
	assert.Error(t, err, "missing chromosome must fail")

	_, err = ann.Annotate(genome.Variant{Chrom: "1", Begin: 100})
	assert.Error(t, err, "empty ref and alt must fail")
}

func TestAnnotateStructuralSwitch(t *testing.T) {
	ann := fixtureAnnotator(t)
	ann.SetStructuralMinLen(10)

	v := genome.Variant{Chrom: "1", Begin: 150, Ref: strings.Repeat("A", 12), Strand: genome.StrandFwd}
	anns, err := ann.Annotate(v)
	require.NoError(t, err)
	require.Len(t, anns, 1)
	assert.Contains(t, anns[0].Effects, EffectStructuralVariant)
	assert.Empty(t, anns[0].ProteinHGVS)
}

// sliceSource yields a fixed list of variants.
type sliceSource struct {
	variants []genome.Variant
	i        int
}

func (s *sliceSource) Next() (genome.Variant, bool, error) {
	if s.i >= len(s.variants) {
		return genome.Variant{}, false, nil
	}
	v := s.variants[s.i]
	s.i++
	return v, true, nil
}

// recordingWriter collects written annotations.
type recordingWriter struct {
	header  bool
	flushed bool
	anns    []Annotation
}

func (w *recordingWriter) WriteHeader() error { w.header = true; return nil }
func (w *recordingWriter) Write(ann Annotation) error {
	w.anns = append(w.anns, ann)
	return nil
}
func (w *recordingWriter) Flush() error { w.flushed = true; return nil }

func TestAnnotateAll(t *testing.T) {
	ann := fixtureAnnotator(t)

	src := &sliceSource{variants: []genome.Variant{
		snv(154, "G", "C"),
		snv(250, "A", "G"),
		{Chrom: "1", Begin: 300}, // invalid: logged and skipped
		snv(560, "A", "G"),
	}}
	w := &recordingWriter{}

	require.NoError(t, ann.AnnotateAll(src, w))
	assert.True(t, w.flushed)
	require.Len(t, w.anns, 3)

	// Results arrive in input order despite parallel annotation.
	assert.Contains(t, w.anns[0].Effects, EffectMissense)
	assert.Contains(t, w.anns[1].Effects, EffectCodingIntron)
	assert.Contains(t, w.anns[2].Effects, EffectThreePrimeUTR)
}
