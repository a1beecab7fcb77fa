// Package genome provides strand- and origin-aware genomic coordinate primitives.
package genome

// Strand indicates the genomic strand of a transcript or variant.
type Strand int8

const (
	StrandFwd Strand = 1
	StrandRev Strand = -1
)

// IsForward returns true for the forward strand.
func (s Strand) IsForward() bool {
	return s == StrandFwd
}

// PositionType selects the coordinate origin convention of an input position.
type PositionType int

const (
	// ZeroBased positions use zero-based, half-open interval coordinates.
	ZeroBased PositionType = iota
	// OneBased positions use one-based, fully-closed interval coordinates.
	OneBased
)

// Interval is a genomic interval stored zero-based, half-open, on the
// forward strand. All arithmetic is exact integer math.
type Interval struct {
	Chrom string
	Begin int64
	End   int64
}

// NewInterval builds an Interval from coordinates in either origin
// convention, normalizing to the internal zero-based, half-open form.
// For OneBased, begin and end are the first and last covered bases.
func NewInterval(chrom string, begin, end int64, pt PositionType) Interval {
	if pt == OneBased {
		begin--
	}
	return Interval{Chrom: chrom, Begin: begin, End: end}
}

// Len returns the number of bases covered by the interval.
func (i Interval) Len() int64 {
	return i.End - i.Begin
}

// IsEmpty returns true for zero-length intervals (insertion points).
func (i Interval) IsEmpty() bool {
	return i.End <= i.Begin
}

// Contains returns true if the zero-based position lies within the interval.
func (i Interval) Contains(pos int64) bool {
	return pos >= i.Begin && pos < i.End
}

// ContainsInterval returns true if o lies entirely within i.
func (i Interval) ContainsInterval(o Interval) bool {
	if i.Chrom != o.Chrom {
		return false
	}
	return o.Begin >= i.Begin && o.End <= i.End
}

// Overlaps returns true if the two intervals share at least one base.
// An empty interval [p,p) overlaps only when p falls strictly inside the
// other interval, so an insertion point on a region boundary belongs to
// neither side.
func (i Interval) Overlaps(o Interval) bool {
	if i.Chrom != o.Chrom {
		return false
	}
	if i.IsEmpty() {
		return i.Begin > o.Begin && i.Begin < o.End
	}
	if o.IsEmpty() {
		return o.Begin > i.Begin && o.Begin < i.End
	}
	return i.Begin < o.End && o.Begin < i.End
}

// Shifted returns the interval moved by delta bases (signed).
func (i Interval) Shifted(delta int64) Interval {
	return Interval{Chrom: i.Chrom, Begin: i.Begin + delta, End: i.End + delta}
}

// Intersection returns the overlap of the two intervals, or an empty
// interval anchored at i.Begin when they do not overlap.
func (i Interval) Intersection(o Interval) Interval {
	if i.Chrom != o.Chrom {
		return Interval{Chrom: i.Chrom, Begin: i.Begin, End: i.Begin}
	}
	begin := i.Begin
	if o.Begin > begin {
		begin = o.Begin
	}
	end := i.End
	if o.End < end {
		end = o.End
	}
	if end < begin {
		end = begin
	}
	return Interval{Chrom: i.Chrom, Begin: begin, End: end}
}

// Mirrored returns the interval's coordinates on the opposite strand of a
// chromosome of the given length. The interval covers the same bases; only
// the coordinate frame flips.
func (i Interval) Mirrored(chromLen int64) Interval {
	return Interval{Chrom: i.Chrom, Begin: chromLen - i.End, End: chromLen - i.Begin}
}
