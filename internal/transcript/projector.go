package transcript

import (
	"fmt"

	"github.com/varannot/varannot/internal/genome"
)

// CDSPosition locates a genomic position in the CDS coordinate frame.
// Offset counts bases from the first CDS base in transcript direction and
// may exceed the CDS length for 3'UTR positions (the coding frame continues
// through the UTR for stop-scanning purposes) or be negative for 5'UTR ones.
type CDSPosition struct {
	Offset int64
	// Intronic marks positions that fall between exons; per projection
	// policy the offset is then that of the nearest upstream exonic base
	// (in transcript direction).
	Intronic bool
	// OutsideCDS marks positions outside the genomic CDS interval.
	OutsideCDS bool
}

// Frame returns Offset mod 3, always in 0..2.
func (p CDSPosition) Frame() int64 {
	f := p.Offset % 3
	if f < 0 {
		f += 3
	}
	return f
}

// Projector translates positions between the genome, transcript, CDS and
// protein coordinate frames of one transcript model. It is stateless beyond
// the model reference; a Projector may be shared across goroutines.
type Projector struct {
	tm *Model
}

// NewProjector returns a projector for the given model.
func NewProjector(tm *Model) Projector {
	return Projector{tm: tm}
}

// TranscriptOffset returns the transcript-direction offset of a genomic
// position and whether the position is intronic. Intronic positions clamp
// to the nearest upstream exonic base; positions before the transcript
// clamp to 0, positions after it to the last exonic base.
func (p Projector) TranscriptOffset(pos int64) (int64, bool) {
	m := p.tm
	var cum int64
	if m.Strand.IsForward() {
		for _, e := range m.Exons {
			if pos < e.Begin {
				if cum == 0 {
					return 0, false
				}
				return cum - 1, true
			}
			if pos < e.End {
				return cum + pos - e.Begin, false
			}
			cum += e.Len()
		}
		return cum - 1, false
	}
	for i := len(m.Exons) - 1; i >= 0; i-- {
		e := m.Exons[i]
		if pos >= e.End {
			if cum == 0 {
				return 0, false
			}
			return cum - 1, true
		}
		if pos >= e.Begin {
			return cum + (e.End - 1 - pos), false
		}
		cum += e.Len()
	}
	return cum - 1, false
}

// cdsStartOffset returns the transcript offset of the first CDS base.
func (p Projector) cdsStartOffset() int64 {
	if !p.tm.IsCoding() {
		return 0
	}
	var first int64
	if p.tm.Strand.IsForward() {
		first = p.tm.CDS.Begin
	} else {
		first = p.tm.CDS.End - 1
	}
	off, _ := p.TranscriptOffset(first)
	return off
}

// cdsEndOffset returns the transcript offset of the last CDS base.
func (p Projector) cdsEndOffset() int64 {
	var last int64
	if p.tm.Strand.IsForward() {
		last = p.tm.CDS.End - 1
	} else {
		last = p.tm.CDS.Begin
	}
	off, _ := p.TranscriptOffset(last)
	return off
}

// CDSLength returns the number of exonic CDS bases, stop codon included.
func (p Projector) CDSLength() int64 {
	if !p.tm.IsCoding() {
		return 0
	}
	return p.cdsEndOffset() - p.cdsStartOffset() + 1
}

// GenomeToCDS projects a genomic position into the CDS coordinate frame.
func (p Projector) GenomeToCDS(pos int64) CDSPosition {
	off, intronic := p.TranscriptOffset(pos)
	return CDSPosition{
		Offset:     off - p.cdsStartOffset(),
		Intronic:   intronic,
		OutsideCDS: !p.tm.IsCoding() || !p.tm.CDS.Contains(pos),
	}
}

// CDSToGenome converts an exonic CDS offset back to its genomic position.
// It is the inverse of GenomeToCDS for exonic CDS positions.
func (p Projector) CDSToGenome(offset int64) (int64, error) {
	if !p.tm.IsCoding() {
		return 0, fmt.Errorf("transcript %s: %w: no CDS", p.tm.Accession, ErrMalformedTranscript)
	}
	if offset < 0 || offset >= p.CDSLength() {
		return 0, fmt.Errorf("CDS offset %d out of range [0,%d)", offset, p.CDSLength())
	}
	target := p.cdsStartOffset() + offset
	m := p.tm
	var cum int64
	if m.Strand.IsForward() {
		for _, e := range m.Exons {
			if cum+e.Len() > target {
				return e.Begin + (target - cum), nil
			}
			cum += e.Len()
		}
	} else {
		for i := len(m.Exons) - 1; i >= 0; i-- {
			e := m.Exons[i]
			if cum+e.Len() > target {
				return e.End - 1 - (target - cum), nil
			}
			cum += e.Len()
		}
	}
	return 0, fmt.Errorf("CDS offset %d beyond transcript", offset)
}

// CDSSequence reconstructs the wild-type coding sequence: the transcript
// sequence restricted to the CDS interval, strand-correct.
func (p Projector) CDSSequence() string {
	if !p.tm.IsCoding() || p.tm.Sequence == "" {
		return ""
	}
	return p.tm.Sequence[p.cdsStartOffset() : p.cdsEndOffset()+1]
}

// CodingFromCDSStart returns the transcript sequence from the first CDS
// base through the transcript end. The 3'UTR tail keeps the coding reading
// frame available for downstream stop-codon scanning.
func (p Projector) CodingFromCDSStart() string {
	if !p.tm.IsCoding() || p.tm.Sequence == "" {
		return ""
	}
	return p.tm.Sequence[p.cdsStartOffset():]
}

// CodingWithVariant splices a genomic variant into the CodingFromCDSStart
// frame: intronic bases are never part of the result, and when the change
// interval's last base lands in an intron or past an exon end the splice
// uses the last exonic base actually altered.
func (p Projector) CodingWithVariant(v genome.Variant) string {
	seq := p.CodingFromCDSStart()
	if seq == "" {
		return ""
	}
	alt := v.AltOn(p.tm.Strand)
	cdsStart := p.cdsStartOffset()
	iv := v.Interval()

	if iv.IsEmpty() {
		// Insertion between Begin-1 and Begin.
		off, intronic := p.TranscriptOffset(v.Begin)
		if intronic {
			return seq
		}
		idx := off - cdsStart
		if !p.tm.Strand.IsForward() {
			idx++
		}
		if idx < 0 || idx > int64(len(seq)) {
			return seq
		}
		return seq[:idx] + alt + seq[idx:]
	}

	lead, trail := iv.Begin, iv.End-1
	if !p.tm.Strand.IsForward() {
		lead, trail = trail, lead
	}
	bOff, bIntronic := p.TranscriptOffset(lead)
	b := bOff - cdsStart
	if bIntronic {
		// A change starting in an intron first alters the next exonic base.
		b++
	}
	if b < 0 {
		b = 0
	}
	eOff, _ := p.TranscriptOffset(trail)
	e := eOff - cdsStart
	if e >= int64(len(seq)) {
		e = int64(len(seq)) - 1
	}
	if e < b-1 {
		return seq
	}
	return seq[:b] + alt + seq[e+1:]
}
