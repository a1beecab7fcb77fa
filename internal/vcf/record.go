// Package vcf reads VCF files into the engine's minimal variant
// representation.
package vcf

import (
	"strings"

	"github.com/varannot/varannot/internal/genome"
)

// Record is a raw VCF data row: anchored, one-based, possibly
// multi-allelic.
type Record struct {
	Chrom  string
	Pos    int64 // 1-based
	ID     string
	Ref    string
	Alt    string
	Qual   float64
	Filter string
	Info   map[string]string
}

// NormalizeChrom returns the chromosome name without a "chr" prefix.
func (r *Record) NormalizeChrom() string {
	return strings.TrimPrefix(r.Chrom, "chr")
}

// SplitMultiAllelic splits a multi-allelic record into one record per
// alternate allele.
func SplitMultiAllelic(r *Record) []*Record {
	alts := strings.Split(r.Alt, ",")
	if len(alts) == 1 {
		return []*Record{r}
	}
	records := make([]*Record, len(alts))
	for i, alt := range alts {
		clone := *r
		clone.Alt = alt
		records[i] = &clone
	}
	return records
}

// ToVariant trims the record's shared prefix and suffix bases and returns
// the minimal-representation variant. VCF anchors indels on a shared
// leading base; the trim removes it so an insertion ends with an empty ref
// and a deletion with an empty alt.
func (r *Record) ToVariant() genome.Variant {
	ref := strings.ToUpper(r.Ref)
	alt := strings.ToUpper(r.Alt)
	pos := r.Pos // 1-based

	// Trim shared suffix first, then shared prefix (advancing pos).
	for len(ref) > 0 && len(alt) > 0 && ref[len(ref)-1] == alt[len(alt)-1] &&
		// Keep at least one differing base pair for SNVs.
		!(len(ref) == 1 && len(alt) == 1) {
		ref = ref[:len(ref)-1]
		alt = alt[:len(alt)-1]
	}
	for len(ref) > 0 && len(alt) > 0 && ref[0] == alt[0] &&
		!(len(ref) == 1 && len(alt) == 1) {
		ref = ref[1:]
		alt = alt[1:]
		pos++
	}

	if ref == "" {
		// Pure insertion: pos-1 is the base left of the insertion point.
		return genome.NewVariant(r.NormalizeChrom(), pos-1, genome.OneBased, ref, alt)
	}
	return genome.NewVariant(r.NormalizeChrom(), pos, genome.OneBased, ref, alt)
}
