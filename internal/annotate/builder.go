package annotate

import (
	"fmt"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// Shape is the structural category of a variant; each shape has its own
// annotation algorithm parameters.
type Shape int

const (
	ShapeSNV Shape = iota
	ShapeInsertion
	ShapeDeletion
	ShapeBlockSubstitution
)

// ShapeOf categorizes a variant by its ref/alt lengths.
func ShapeOf(v genome.Variant) Shape {
	switch {
	case v.IsSNV():
		return ShapeSNV
	case v.IsInsertion():
		return ShapeInsertion
	case v.IsDeletion():
		return ShapeDeletion
	default:
		return ShapeBlockSubstitution
	}
}

// builder carries the per-(transcript, variant) state threaded through the
// annotation stages. A builder is created, used once and discarded.
type builder struct {
	tm    *transcript.Model
	v     genome.Variant
	shape Shape
	iv    genome.Interval
	proj  transcript.Projector
	class transcript.Classifier
	fmtr  hgvsFormatter
	nuc   string
	loc   *Location
}

// Build annotates a small variant against a transcript. A nil transcript
// yields an intergenic annotation. Classification is total: every variant
// receives at least one effect tag.
func Build(tm *transcript.Model, v genome.Variant) Annotation {
	if tm == nil {
		return intergenicAnnotation(v)
	}
	b := builder{
		tm:    tm,
		v:     v,
		shape: ShapeOf(v),
		iv:    v.Interval(),
		proj:  transcript.NewProjector(tm),
		class: transcript.NewClassifier(tm),
		fmtr:  newHGVSFormatter(tm),
	}
	b.nuc = b.fmtr.Nucleotide(v)
	b.loc = computeLocation(tm, b.iv)
	return b.build()
}

// BuildBlockSubstitution annotates a block substitution, failing when the
// variant's shape does not match: ref and alt must both be non-empty.
func BuildBlockSubstitution(tm *transcript.Model, v genome.Variant) (Annotation, error) {
	if len(v.Ref) == 0 || len(v.Alt) == 0 {
		return Annotation{}, fmt.Errorf("%w: %q>%q is not a block substitution", ErrInvalidVariantShape, v.Ref, v.Alt)
	}
	return Build(tm, v), nil
}

// build walks the region ladder in priority order; the first matching region
// decides the annotation category.
func (b builder) build() Annotation {
	switch {
	case !b.tm.IsCoding():
		return b.nonCodingAnnotation()
	case b.class.ContainsExon(b.iv):
		return b.annotation([]VariantEffect{EffectTranscriptAblation}, "")
	case b.class.OverlapsStartCodon(b.iv):
		return b.annotation([]VariantEffect{EffectStartLost}, "p.0?")
	case b.class.OverlapsCDSExon(b.iv) && b.class.OverlapsCDS(b.iv):
		return b.buildExonicCDS()
	case b.class.IsPurelyIntronic(b.iv) && b.class.OverlapsCDS(b.iv):
		return b.intronicAnnotation()
	case b.class.In5UTR(b.iv):
		return b.utrAnnotation(EffectFivePrimeUTR)
	case b.class.In3UTR(b.iv):
		return b.utrAnnotation(EffectThreePrimeUTR)
	case b.class.IsPurelyIntronic(b.iv):
		// Intron outside the CDS span (UTR intron).
		return b.intronicAnnotation()
	case b.class.IsUpstream(b.iv):
		return b.flankAnnotation(EffectUpstream)
	case b.class.IsDownstream(b.iv):
		return b.flankAnnotation(EffectDownstream)
	default:
		return intergenicAnnotation(b.v)
	}
}

func (b builder) annotation(effects []VariantEffect, protein string) Annotation {
	return Annotation{
		Transcript:     b.tm,
		Variant:        b.v,
		Effects:        effects,
		Location:       b.loc,
		NucleotideHGVS: b.nuc,
		ProteinHGVS:    protein,
	}
}

func (b builder) nonCodingAnnotation() Annotation {
	switch {
	case b.class.OverlapsExon(b.iv):
		return b.annotation(append(b.spliceEffects(), EffectNonCodingExon), "")
	case b.class.IsPurelyIntronic(b.iv):
		return b.annotation(append(b.spliceEffects(), EffectNonCodingIntron), "")
	case b.class.IsUpstream(b.iv):
		return b.flankAnnotation(EffectUpstream)
	case b.class.IsDownstream(b.iv):
		return b.flankAnnotation(EffectDownstream)
	default:
		return intergenicAnnotation(b.v)
	}
}

func (b builder) intronicAnnotation() Annotation {
	effects := b.spliceEffects()
	effects = append(effects, EffectCodingIntron)
	return b.annotation(effects, "")
}

func (b builder) utrAnnotation(effect VariantEffect) Annotation {
	return b.annotation(append(b.spliceEffects(), effect), "")
}

func (b builder) flankAnnotation(effect VariantEffect) Annotation {
	return Annotation{
		Transcript:     b.tm,
		Variant:        b.v,
		Effects:        []VariantEffect{effect},
		NucleotideHGVS: genomicChange(b.v),
	}
}

// spliceEffects returns the splice-site tag for the change, donor before
// acceptor before region; the three windows are disjoint by construction.
func (b builder) spliceEffects() []VariantEffect {
	switch {
	case b.class.OverlapsSpliceDonor(b.iv):
		return []VariantEffect{EffectSpliceDonor}
	case b.class.OverlapsSpliceAcceptor(b.iv):
		return []VariantEffect{EffectSpliceAcceptor}
	case b.class.OverlapsSpliceRegion(b.iv):
		return []VariantEffect{EffectSpliceRegion}
	default:
		return nil
	}
}

func intergenicAnnotation(v genome.Variant) Annotation {
	return Annotation{
		Variant:        v,
		Effects:        []VariantEffect{EffectIntergenic},
		NucleotideHGVS: genomicChange(v),
	}
}

// genomicChange renders the g. change string for a small variant.
func genomicChange(v genome.Variant) string {
	switch ShapeOf(v) {
	case ShapeSNV:
		return gSNV(v)
	case ShapeInsertion:
		return gInsertion(v)
	case ShapeDeletion:
		return gDeletion(v)
	default:
		return gBlockSubstitution(v)
	}
}

// computeLocation derives the exon/intron location descriptor for a change
// interval: a concrete rank when the change stays inside one exon or one
// intron, InvalidRank when it spans boundaries.
func computeLocation(tm *transcript.Model, iv genome.Interval) *Location {
	if !iv.Overlaps(tm.TXRegion()) && !insideSpan(tm.TXRegion(), iv) {
		return nil
	}
	for i, e := range tm.Exons {
		if insideSpan(e, iv) {
			return &Location{Type: LocationExon, Rank: tm.ExonRank(i), Total: tm.ExonCount()}
		}
	}
	for i := 0; i+1 < len(tm.Exons); i++ {
		intron := genome.Interval{Chrom: tm.Chrom, Begin: tm.Exons[i].End, End: tm.Exons[i+1].Begin}
		if insideSpan(intron, iv) {
			rank := i
			if !tm.Strand.IsForward() {
				rank = tm.ExonCount() - 2 - i
			}
			return &Location{Type: LocationIntron, Rank: rank, Total: tm.ExonCount() - 1}
		}
	}
	return &Location{Type: LocationExon, Rank: InvalidRank, Total: tm.ExonCount()}
}

// insideSpan reports whether the change interval lies entirely within the
// region; insertion points count when strictly inside.
func insideSpan(region, iv genome.Interval) bool {
	if iv.IsEmpty() {
		return iv.Begin > region.Begin && iv.Begin < region.End
	}
	return region.ContainsInterval(iv)
}
