package annotate

import (
	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// DefaultStructuralMinLen is the allele length from which the batch
// annotator switches to structural annotation.
const DefaultStructuralMinLen = 1000

// BuildStructural annotates a large-scale alteration at the genomic level:
// a g. change string with long alleles elided, no amino-acid detail, and a
// location whose rank is not applicable. A nil transcript yields the
// intergenic form.
func BuildStructural(tm *transcript.Model, v genome.Variant) Annotation {
	var nuc string
	var effects []VariantEffect
	switch {
	case v.IsInsertion():
		nuc = gInsertion(v)
		effects = []VariantEffect{EffectInsertion, EffectStructuralVariant}
	case v.IsDeletion():
		nuc = gDeletion(v)
		effects = []VariantEffect{EffectDeletion, EffectStructuralVariant}
	case v.IsInversion():
		nuc = gInversion(v)
		effects = []VariantEffect{EffectInversion, EffectStructuralVariant}
	default:
		nuc = gBlockSubstitution(v)
		effects = []VariantEffect{EffectSubstitution, EffectStructuralVariant}
	}

	if tm == nil {
		return Annotation{
			Variant:        v,
			Effects:        effects,
			NucleotideHGVS: nuc,
		}
	}
	return Annotation{
		Transcript:     tm,
		Variant:        v,
		Effects:        effects,
		Location:       &Location{Type: LocationExon, Rank: InvalidRank, Total: tm.ExonCount()},
		NucleotideHGVS: nuc,
	}
}
