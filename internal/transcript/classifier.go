package transcript

import "github.com/varannot/varannot/internal/genome"

// DefaultFlankSize is the upstream/downstream window around a transcript in
// which variants are still reported against it.
const DefaultFlankSize int64 = 1000

// Classifier answers region-membership questions for one transcript: where a
// change interval lies relative to exons, introns, UTRs, splice sites and the
// flanking regions. All predicates take the change interval in forward-strand
// genomic coordinates.
type Classifier struct {
	tm    *Model
	flank int64
}

// NewClassifier returns a classifier with the default flank size.
func NewClassifier(tm *Model) Classifier {
	return Classifier{tm: tm, flank: DefaultFlankSize}
}

// NewClassifierWithFlank returns a classifier with a custom flank size.
func NewClassifierWithFlank(tm *Model, flank int64) Classifier {
	return Classifier{tm: tm, flank: flank}
}

// OverlapsTranscript reports whether the change touches the transcript span.
func (c Classifier) OverlapsTranscript(iv genome.Interval) bool {
	return iv.Overlaps(c.tm.TXRegion())
}

// ContainsTranscript reports whether the change deletes or replaces the
// entire transcript.
func (c Classifier) ContainsTranscript(iv genome.Interval) bool {
	return iv.ContainsInterval(c.tm.TXRegion())
}

// OverlapsExon reports whether the change touches at least one exonic base.
func (c Classifier) OverlapsExon(iv genome.Interval) bool {
	for _, e := range c.tm.Exons {
		if iv.Overlaps(e) {
			return true
		}
		if e.Begin >= iv.End && !iv.IsEmpty() {
			break
		}
	}
	return false
}

// IsPurelyIntronic reports whether the change lies inside the transcript
// span without touching any exonic base.
func (c Classifier) IsPurelyIntronic(iv genome.Interval) bool {
	return c.OverlapsTranscript(iv) && !c.OverlapsExon(iv)
}

// ContainsExon reports whether the change spans at least one whole exon.
func (c Classifier) ContainsExon(iv genome.Interval) bool {
	for _, e := range c.tm.Exons {
		if iv.ContainsInterval(e) {
			return true
		}
	}
	return false
}

// OverlapsCDSExon reports whether the change touches a coding exonic base.
func (c Classifier) OverlapsCDSExon(iv genome.Interval) bool {
	if !c.tm.IsCoding() {
		return false
	}
	for _, e := range c.tm.Exons {
		cdsExon := e.Intersection(c.tm.CDS)
		if !cdsExon.IsEmpty() && iv.Overlaps(cdsExon) {
			return true
		}
	}
	return false
}

// OverlapsCDS reports whether the change touches the coding region.
func (c Classifier) OverlapsCDS(iv genome.Interval) bool {
	return c.tm.IsCoding() && iv.Overlaps(c.tm.CDS)
}

// OverlapsStartCodon reports whether the change touches the first three
// coding bases.
func (c Classifier) OverlapsStartCodon(iv genome.Interval) bool {
	if !c.tm.IsCoding() {
		return false
	}
	p := NewProjector(c.tm)
	if p.CDSLength() < 3 {
		return false
	}
	return c.overlapsCodon(iv, p, 0, 2)
}

// OverlapsStopCodon reports whether the change touches the last three
// coding bases.
func (c Classifier) OverlapsStopCodon(iv genome.Interval) bool {
	if !c.tm.IsCoding() {
		return false
	}
	p := NewProjector(c.tm)
	n := p.CDSLength()
	if n < 3 {
		return false
	}
	return c.overlapsCodon(iv, p, n-3, n-1)
}

// overlapsCodon tests the change against the exonic span of the CDS offsets
// [a, b]. The span is intersected with the exons: a codon split across an
// exon boundary must not claim the intervening intron.
func (c Classifier) overlapsCodon(iv genome.Interval, p Projector, a, b int64) bool {
	gA, errA := p.CDSToGenome(a)
	gB, errB := p.CDSToGenome(b)
	if errA != nil || errB != nil {
		return false
	}
	if gA > gB {
		gA, gB = gB, gA
	}
	span := genome.Interval{Chrom: c.tm.Chrom, Begin: gA, End: gB + 1}
	for _, e := range c.tm.Exons {
		if seg := span.Intersection(e); !seg.IsEmpty() && iv.Overlaps(seg) {
			return true
		}
	}
	return false
}

// In5UTR reports whether the change lies in the 5' untranslated region:
// exonic, inside the transcript, upstream (in transcript direction) of the
// CDS, touching no coding base.
func (c Classifier) In5UTR(iv genome.Interval) bool {
	if !c.tm.IsCoding() || !c.OverlapsExon(iv) || c.OverlapsCDS(iv) {
		return false
	}
	if c.tm.Strand.IsForward() {
		return leftAnchor(iv) < c.tm.CDS.Begin
	}
	return anchor(iv) >= c.tm.CDS.End
}

// In3UTR reports whether the change lies in the 3' untranslated region.
func (c Classifier) In3UTR(iv genome.Interval) bool {
	if !c.tm.IsCoding() || !c.OverlapsExon(iv) || c.OverlapsCDS(iv) {
		return false
	}
	if c.tm.Strand.IsForward() {
		return anchor(iv) >= c.tm.CDS.End
	}
	return leftAnchor(iv) < c.tm.CDS.Begin
}

// IsUpstream reports whether the change lies entirely before the transcript
// (in transcript direction) within the flank window.
func (c Classifier) IsUpstream(iv genome.Interval) bool {
	if c.OverlapsTranscript(iv) {
		return false
	}
	tx := c.tm.TXRegion()
	if c.tm.Strand.IsForward() {
		return iv.Overlaps(genome.Interval{Chrom: tx.Chrom, Begin: tx.Begin - c.flank, End: tx.Begin})
	}
	return iv.Overlaps(genome.Interval{Chrom: tx.Chrom, Begin: tx.End, End: tx.End + c.flank})
}

// IsDownstream reports whether the change lies entirely after the transcript
// (in transcript direction) within the flank window.
func (c Classifier) IsDownstream(iv genome.Interval) bool {
	if c.OverlapsTranscript(iv) {
		return false
	}
	tx := c.tm.TXRegion()
	if c.tm.Strand.IsForward() {
		return iv.Overlaps(genome.Interval{Chrom: tx.Chrom, Begin: tx.End, End: tx.End + c.flank})
	}
	return iv.Overlaps(genome.Interval{Chrom: tx.Chrom, Begin: tx.Begin - c.flank, End: tx.Begin})
}

// spliceWindows enumerates the donor, acceptor and splice-region windows of
// every intron. Windows are disjoint: the donor site is the first two intron
// bases after an exon (transcript direction), the acceptor site the last two
// before the next exon, and the splice region covers the three exonic bases
// adjacent to each boundary plus intronic bases 3 through 8.
type spliceWindows struct {
	donor, acceptor []genome.Interval
	region          []genome.Interval
}

func (c Classifier) windows() spliceWindows {
	var w spliceWindows
	exons := c.tm.Exons
	for i := 0; i+1 < len(exons); i++ {
		intron := genome.Interval{Chrom: c.tm.Chrom, Begin: exons[i].End, End: exons[i+1].Begin}
		if intron.Len() < 4 {
			continue
		}
		left2 := genome.Interval{Chrom: intron.Chrom, Begin: intron.Begin, End: intron.Begin + 2}
		right2 := genome.Interval{Chrom: intron.Chrom, Begin: intron.End - 2, End: intron.End}
		if c.tm.Strand.IsForward() {
			w.donor = append(w.donor, left2)
			w.acceptor = append(w.acceptor, right2)
		} else {
			w.donor = append(w.donor, right2)
			w.acceptor = append(w.acceptor, left2)
		}
		// Exonic flanks of the region window.
		w.region = append(w.region,
			genome.Interval{Chrom: intron.Chrom, Begin: intron.Begin - 3, End: intron.Begin},
			genome.Interval{Chrom: intron.Chrom, Begin: intron.End, End: intron.End + 3})
		// Intronic bases 3..8 from each boundary, clipped to the intron and
		// kept clear of the opposite 2-base site.
		leftRegion := genome.Interval{Chrom: intron.Chrom, Begin: intron.Begin + 2, End: intron.Begin + 8}
		rightRegion := genome.Interval{Chrom: intron.Chrom, Begin: intron.End - 8, End: intron.End - 2}
		inner := genome.Interval{Chrom: intron.Chrom, Begin: intron.Begin + 2, End: intron.End - 2}
		leftRegion = leftRegion.Intersection(inner)
		rightRegion = rightRegion.Intersection(inner)
		if !leftRegion.IsEmpty() {
			w.region = append(w.region, leftRegion)
		}
		if !rightRegion.IsEmpty() {
			w.region = append(w.region, rightRegion)
		}
	}
	return w
}

// OverlapsSpliceDonor reports whether the change touches a donor site.
func (c Classifier) OverlapsSpliceDonor(iv genome.Interval) bool {
	return overlapsAny(iv, c.windows().donor)
}

// OverlapsSpliceAcceptor reports whether the change touches an acceptor site.
func (c Classifier) OverlapsSpliceAcceptor(iv genome.Interval) bool {
	return overlapsAny(iv, c.windows().acceptor)
}

// OverlapsSpliceRegion reports whether the change touches a splice-region
// window without deciding donor/acceptor membership.
func (c Classifier) OverlapsSpliceRegion(iv genome.Interval) bool {
	return overlapsAny(iv, c.windows().region)
}

func overlapsAny(iv genome.Interval, windows []genome.Interval) bool {
	for _, w := range windows {
		if iv.Overlaps(w) {
			return true
		}
	}
	return false
}

// anchor gives a representative position for region membership tests:
// insertions use the insertion point, spans their first base.
func anchor(iv genome.Interval) int64 {
	return iv.Begin
}

// leftAnchor attributes an insertion point to the base on its genomic left,
// so a point sitting exactly on the CDS begin counts toward the adjacent UTR.
func leftAnchor(iv genome.Interval) int64 {
	if iv.IsEmpty() {
		return iv.Begin - 1
	}
	return iv.Begin
}
