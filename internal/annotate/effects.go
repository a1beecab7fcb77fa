// Package annotate turns (transcript, variant) pairs into HGVS-style
// annotations: effect tags plus nucleotide- and protein-level change strings.
package annotate

// VariantEffect is a sequence-ontology style effect tag.
type VariantEffect string

const (
	EffectTranscriptAblation        VariantEffect = "transcript_ablation"
	EffectStartLost                 VariantEffect = "start_lost"
	EffectStopGained                VariantEffect = "stop_gained"
	EffectStopLost                  VariantEffect = "stop_lost"
	EffectStopRetained              VariantEffect = "stop_retained_variant"
	EffectSynonymous                VariantEffect = "synonymous_variant"
	EffectMissense                  VariantEffect = "missense_variant"
	EffectMNV                       VariantEffect = "mnv"
	EffectComplexSubstitution       VariantEffect = "complex_substitution"
	EffectInternalFeatureElongation VariantEffect = "internal_feature_elongation"
	EffectFeatureTruncation         VariantEffect = "feature_truncation"
	EffectFrameshiftVariant         VariantEffect = "frameshift_variant"
	EffectFrameshiftElongation      VariantEffect = "frameshift_elongation"
	EffectFrameshiftTruncation      VariantEffect = "frameshift_truncation"
	EffectInframeInsertion          VariantEffect = "inframe_insertion"
	EffectInframeDeletion           VariantEffect = "inframe_deletion"
	EffectSpliceDonor               VariantEffect = "splice_donor_variant"
	EffectSpliceAcceptor            VariantEffect = "splice_acceptor_variant"
	EffectSpliceRegion              VariantEffect = "splice_region_variant"
	EffectCodingIntron              VariantEffect = "coding_transcript_intron_variant"
	EffectFivePrimeUTR              VariantEffect = "5_prime_UTR_variant"
	EffectThreePrimeUTR             VariantEffect = "3_prime_UTR_variant"
	EffectUpstream                  VariantEffect = "upstream_gene_variant"
	EffectDownstream                VariantEffect = "downstream_gene_variant"
	EffectIntergenic                VariantEffect = "intergenic_variant"
	EffectNonCodingExon             VariantEffect = "non_coding_transcript_exon_variant"
	EffectNonCodingIntron           VariantEffect = "non_coding_transcript_intron_variant"
	EffectStructuralVariant         VariantEffect = "structural_variant"
	EffectInsertion                 VariantEffect = "insertion"
	EffectDeletion                  VariantEffect = "deletion"
	EffectInversion                 VariantEffect = "inversion"
	EffectSubstitution              VariantEffect = "substitution"
)

// Impact levels, most to least severe.
const (
	ImpactHigh     = "HIGH"
	ImpactModerate = "MODERATE"
	ImpactLow      = "LOW"
	ImpactModifier = "MODIFIER"
)

var effectImpact = map[VariantEffect]string{
	EffectTranscriptAblation:        ImpactHigh,
	EffectStartLost:                 ImpactHigh,
	EffectStopGained:                ImpactHigh,
	EffectStopLost:                  ImpactHigh,
	EffectFrameshiftVariant:         ImpactHigh,
	EffectFrameshiftElongation:      ImpactHigh,
	EffectFrameshiftTruncation:      ImpactHigh,
	EffectSpliceDonor:               ImpactHigh,
	EffectSpliceAcceptor:            ImpactHigh,
	EffectStructuralVariant:         ImpactHigh,
	EffectMissense:                  ImpactModerate,
	EffectMNV:                       ImpactModerate,
	EffectComplexSubstitution:       ImpactModerate,
	EffectInternalFeatureElongation: ImpactModerate,
	EffectFeatureTruncation:         ImpactModerate,
	EffectInframeInsertion:          ImpactModerate,
	EffectInframeDeletion:           ImpactModerate,
	EffectInsertion:                 ImpactModerate,
	EffectDeletion:                  ImpactModerate,
	EffectInversion:                 ImpactModerate,
	EffectSubstitution:              ImpactModerate,
	EffectStopRetained:              ImpactLow,
	EffectSynonymous:                ImpactLow,
	EffectSpliceRegion:              ImpactLow,
}

// Impact returns the impact level for an effect tag. Effects without an
// explicit mapping are MODIFIER.
func Impact(e VariantEffect) string {
	if impact, ok := effectImpact[e]; ok {
		return impact
	}
	return ImpactModifier
}

// HighestImpact returns the most severe impact among the effects.
func HighestImpact(effects []VariantEffect) string {
	rank := map[string]int{ImpactHigh: 3, ImpactModerate: 2, ImpactLow: 1, ImpactModifier: 0}
	best := ImpactModifier
	for _, e := range effects {
		if rank[Impact(e)] > rank[best] {
			best = Impact(e)
		}
	}
	return best
}
