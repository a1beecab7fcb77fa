package annotate

import (
	"errors"
	"strings"

	"github.com/varannot/varannot/internal/genome"
	"github.com/varannot/varannot/internal/transcript"
)

// ErrInvalidVariantShape is returned when a variant's shape does not match
// the builder invoked, e.g. an empty ref or alt passed to the
// block-substitution algorithm.
var ErrInvalidVariantShape = errors.New("variant shape does not match builder")

// InvalidRank marks a location whose exon/intron rank is not applicable,
// e.g. a structural variant spanning several exons.
const InvalidRank = -1

// LocationType distinguishes exonic from intronic locations.
type LocationType int

const (
	LocationExon LocationType = iota
	LocationIntron
)

// Location describes where on a transcript a change lies: exon or intron
// rank (0-based, transcript order) out of a total. Rank is InvalidRank when
// no single exon or intron applies.
type Location struct {
	Type  LocationType
	Rank  int
	Total int
}

// Annotation is the engine's output record for one (transcript, variant)
// pair. Transcript is nil for intergenic annotations; ProteinHGVS is empty
// when no protein-level description applies.
type Annotation struct {
	Transcript     *transcript.Model
	Variant        genome.Variant
	Effects        []VariantEffect
	Location       *Location
	NucleotideHGVS string
	ProteinHGVS    string
}

// EffectString joins the effect tags for display.
func (a Annotation) EffectString() string {
	parts := make([]string, len(a.Effects))
	for i, e := range a.Effects {
		parts[i] = string(e)
	}
	return strings.Join(parts, ",")
}

// Impact returns the most severe impact among the annotation's effects.
func (a Annotation) Impact() string {
	return HighestImpact(a.Effects)
}

// GeneSymbol returns the annotated gene symbol, empty for intergenic.
func (a Annotation) GeneSymbol() string {
	if a.Transcript == nil {
		return ""
	}
	return a.Transcript.GeneSymbol
}

// Accession returns the annotated transcript accession, empty for intergenic.
func (a Annotation) Accession() string {
	if a.Transcript == nil {
		return ""
	}
	return a.Transcript.Accession
}
