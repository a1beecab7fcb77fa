package genome

// Variant is an immutable genomic sequence alteration: a reference span on a
// chromosome replaced by an alternate sequence. Coordinates are stored
// zero-based on the forward strand; ref and alt are forward-strand sequences
// in their minimal representation (an insertion has an empty ref, a deletion
// an empty alt, and ref/alt never share a leading or trailing base).
type Variant struct {
	Chrom  string
	Begin  int64
	Ref    string
	Alt    string
	Strand Strand
}

// NewVariant builds a Variant from a position in either origin convention.
// For OneBased, pos is the position of the first reference base (or, for a
// pure insertion, the base immediately left of the insertion point).
func NewVariant(chrom string, pos int64, pt PositionType, ref, alt string) Variant {
	if pt == OneBased {
		pos--
		if ref == "" {
			// One-based insertion anchors left of the gap.
			pos++
		}
	}
	return Variant{Chrom: chrom, Begin: pos, Ref: ref, Alt: alt, Strand: StrandFwd}
}

// Interval returns the genomic span replaced by the variant. Insertions
// yield an empty interval at the insertion point.
func (v Variant) Interval() Interval {
	return Interval{Chrom: v.Chrom, Begin: v.Begin, End: v.Begin + int64(len(v.Ref))}
}

// IsSNV returns true for single-base substitutions.
func (v Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}

// IsInsertion returns true when no reference base is replaced.
func (v Variant) IsInsertion() bool {
	return len(v.Ref) == 0 && len(v.Alt) > 0
}

// IsDeletion returns true when the alternate sequence is empty.
func (v Variant) IsDeletion() bool {
	return len(v.Ref) > 0 && len(v.Alt) == 0
}

// IsBlockSubstitution returns true when a non-empty reference span is
// replaced by a non-empty alternate of any length, excluding plain SNVs.
func (v Variant) IsBlockSubstitution() bool {
	return len(v.Ref) > 0 && len(v.Alt) > 0 && !v.IsSNV()
}

// IsInversion returns true when alt is exactly the reverse complement of a
// multi-base ref.
func (v Variant) IsInversion() bool {
	return len(v.Ref) > 1 && v.Alt == ReverseComplement(v.Ref)
}

// RefOn returns the reference allele as read on the given strand.
func (v Variant) RefOn(s Strand) string {
	if s == v.Strand {
		return v.Ref
	}
	return ReverseComplement(v.Ref)
}

// AltOn returns the alternate allele as read on the given strand.
func (v Variant) AltOn(s Strand) string {
	if s == v.Strand {
		return v.Alt
	}
	return ReverseComplement(v.Alt)
}

// FrameDelta returns the reading-frame shift introduced by the variant:
// (len(alt) - len(ref)) mod 3, always in 0..2.
func (v Variant) FrameDelta() int {
	d := (len(v.Alt) - len(v.Ref)) % 3
	if d < 0 {
		d += 3
	}
	return d
}
